package controllers

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/emurray/registrar/internal/app/models"
	"github.com/emurray/registrar/internal/app/services"
	"github.com/emurray/registrar/internal/web"
)

type fakeLecturerService struct {
	lecturers []*models.Lecturer
	result    *services.DeleteResult
	err       error
}

func (s *fakeLecturerService) GetAllLecturers(ctx context.Context) ([]*models.Lecturer, error) {
	return s.lecturers, s.err
}

func (s *fakeLecturerService) DeleteLecturer(ctx context.Context, lecturerID string) (*services.DeleteResult, error) {
	return s.result, s.err
}

func newLecturerTestRouter(service services.LecturerService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.SetHTMLTemplate(web.Templates())

	controller := NewLecturerController(service)
	router.GET("/lecturers", controller.ListLecturers)
	router.GET("/lecturers/delete/:lid", controller.DeleteLecturer)
	return router
}

func TestListLecturersPage(t *testing.T) {
	service := &fakeLecturerService{lecturers: []*models.Lecturer{
		{ID: "L001", Name: "Dr. Quinn", DID: "D01"},
	}}
	router := newLecturerTestRouter(service)

	recorder := httptest.NewRecorder()
	request, _ := http.NewRequest(http.MethodGet, "/lecturers", nil)
	router.ServeHTTP(recorder, request)

	if recorder.Code != http.StatusOK {
		t.Errorf("expected status 200, got %d", recorder.Code)
	}
	if body := recorder.Body.String(); !strings.Contains(body, "Dr. Quinn") {
		t.Errorf("expected lecturer name in page, got %q", body)
	}
}

func TestDeleteLecturerRedirectsWhenDeleted(t *testing.T) {
	service := &fakeLecturerService{result: &services.DeleteResult{
		Status:     services.DeleteStatusDeleted,
		LecturerID: "L002",
	}}
	router := newLecturerTestRouter(service)

	recorder := httptest.NewRecorder()
	request, _ := http.NewRequest(http.MethodGet, "/lecturers/delete/L002", nil)
	router.ServeHTTP(recorder, request)

	if recorder.Code != http.StatusFound {
		t.Errorf("expected status 302, got %d", recorder.Code)
	}
	if location := recorder.Header().Get("Location"); location != "/lecturers" {
		t.Errorf("expected redirect to /lecturers, got %q", location)
	}
}

func TestDeleteLecturerBlockedPage(t *testing.T) {
	service := &fakeLecturerService{result: &services.DeleteResult{
		Status:     services.DeleteStatusBlocked,
		LecturerID: "L001",
		Modules: []*models.Module{
			{MID: "M101", Name: "Distributed Systems", Lecturer: "L001"},
		},
	}}
	router := newLecturerTestRouter(service)

	recorder := httptest.NewRecorder()
	request, _ := http.NewRequest(http.MethodGet, "/lecturers/delete/L001", nil)
	router.ServeHTTP(recorder, request)

	// A blocked deletion is a processed request, not an error
	if recorder.Code != http.StatusOK {
		t.Errorf("expected status 200, got %d", recorder.Code)
	}
	body := recorder.Body.String()
	if !strings.Contains(body, "Cannot delete lecturer L001") {
		t.Errorf("expected blocked message in page, got %q", body)
	}
	if !strings.Contains(body, "M101") || !strings.Contains(body, "Distributed Systems") {
		t.Errorf("expected referencing module in page, got %q", body)
	}
}

func TestDeleteLecturerNotFoundPage(t *testing.T) {
	service := &fakeLecturerService{result: &services.DeleteResult{
		Status:     services.DeleteStatusNotFound,
		LecturerID: "L404",
	}}
	router := newLecturerTestRouter(service)

	recorder := httptest.NewRecorder()
	request, _ := http.NewRequest(http.MethodGet, "/lecturers/delete/L404", nil)
	router.ServeHTTP(recorder, request)

	if recorder.Code != http.StatusNotFound {
		t.Errorf("expected status 404, got %d", recorder.Code)
	}
	if body := recorder.Body.String(); !strings.Contains(body, "Lecturer L404 not found") {
		t.Errorf("expected not found message in page, got %q", body)
	}
}

func TestDeleteLecturerStoreFailure(t *testing.T) {
	service := &fakeLecturerService{err: errors.New("connection refused")}
	router := newLecturerTestRouter(service)

	recorder := httptest.NewRecorder()
	request, _ := http.NewRequest(http.MethodGet, "/lecturers/delete/L001", nil)
	router.ServeHTTP(recorder, request)

	if recorder.Code != http.StatusInternalServerError {
		t.Errorf("expected status 500, got %d", recorder.Code)
	}
	// The underlying error stays out of the response
	if body := recorder.Body.String(); strings.Contains(body, "connection refused") {
		t.Errorf("store error leaked into page: %q", body)
	}
}
