package controllers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/emurray/registrar/internal/app/models"
	"github.com/emurray/registrar/internal/app/services"
	"github.com/emurray/registrar/internal/pkg/apperrors"
	"github.com/emurray/registrar/internal/web"
)

// fakeStudentService wraps the real service over an in-memory store so
// handler tests exercise the validation and conflict paths end to end
type fakeStudentStore struct {
	students map[string]*models.Student
}

func newFakeStudentStore(students ...*models.Student) *fakeStudentStore {
	s := &fakeStudentStore{students: make(map[string]*models.Student)}
	for _, st := range students {
		s.students[st.SID] = st
	}
	return s
}

func (s *fakeStudentStore) GetAll(ctx context.Context, search string) ([]*models.Student, error) {
	var out []*models.Student
	for _, st := range s.students {
		if search == "" || strings.Contains(strings.ToLower(st.Name), strings.ToLower(search)) {
			out = append(out, st)
		}
	}
	return out, nil
}

func (s *fakeStudentStore) GetBySID(ctx context.Context, sid string) (*models.Student, error) {
	st, ok := s.students[sid]
	if !ok {
		return nil, apperrors.ErrStudentNotFound
	}
	return st, nil
}

func (s *fakeStudentStore) ExistsBySID(ctx context.Context, sid string) (bool, error) {
	_, ok := s.students[sid]
	return ok, nil
}

func (s *fakeStudentStore) Create(ctx context.Context, student *models.Student) error {
	s.students[student.SID] = student
	return nil
}

func (s *fakeStudentStore) Update(ctx context.Context, student *models.Student) error {
	existing, ok := s.students[student.SID]
	if !ok {
		return apperrors.ErrStudentNotFound
	}
	existing.Name = student.Name
	existing.Age = student.Age
	return nil
}

func newStudentTestRouter(store *fakeStudentStore) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.SetHTMLTemplate(web.Templates())

	controller := NewStudentController(services.NewStudentService(store))
	router.GET("/students", controller.ListStudents)
	router.GET("/students/add", controller.ShowAddForm)
	router.POST("/students/add", controller.CreateStudent)
	router.GET("/students/edit/:sid", controller.ShowEditForm)
	router.POST("/students/edit/:sid", controller.UpdateStudent)
	return router
}

func postForm(router *gin.Engine, path string, form url.Values) *httptest.ResponseRecorder {
	recorder := httptest.NewRecorder()
	request, _ := http.NewRequest(http.MethodPost, path, strings.NewReader(form.Encode()))
	request.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	router.ServeHTTP(recorder, request)
	return recorder
}

func TestListStudentsSearchFiltersByName(t *testing.T) {
	store := newFakeStudentStore(
		&models.Student{SID: "G001", Name: "Alice", Age: 21},
		&models.Student{SID: "G002", Name: "Bob", Age: 24},
	)
	router := newStudentTestRouter(store)

	recorder := httptest.NewRecorder()
	request, _ := http.NewRequest(http.MethodGet, "/students?search=ali", nil)
	router.ServeHTTP(recorder, request)

	if recorder.Code != http.StatusOK {
		t.Errorf("expected status 200, got %d", recorder.Code)
	}
	body := recorder.Body.String()
	if !strings.Contains(body, "Alice") {
		t.Errorf("expected Alice in filtered listing, got %q", body)
	}
	if strings.Contains(body, "Bob") {
		t.Errorf("did not expect Bob in filtered listing, got %q", body)
	}
}

func TestCreateStudentSuccessRedirects(t *testing.T) {
	store := newFakeStudentStore()
	router := newStudentTestRouter(store)

	recorder := postForm(router, "/students/add", url.Values{
		"sid":  {"G001"},
		"name": {"Alice"},
		"age":  {"21"},
	})

	if recorder.Code != http.StatusSeeOther {
		t.Errorf("expected status 303, got %d", recorder.Code)
	}
	if location := recorder.Header().Get("Location"); location != "/students" {
		t.Errorf("expected redirect to /students, got %q", location)
	}
	if _, ok := store.students["G001"]; !ok {
		t.Error("expected student to be stored")
	}
}

func TestCreateStudentInvalidInputRerendersForm(t *testing.T) {
	router := newStudentTestRouter(newFakeStudentStore())

	recorder := postForm(router, "/students/add", url.Values{
		"sid":  {"G01"},
		"name": {"Alice"},
		"age":  {"21"},
	})

	if recorder.Code != http.StatusBadRequest {
		t.Errorf("expected status 400, got %d", recorder.Code)
	}
	body := recorder.Body.String()
	if !strings.Contains(body, "Student ID must be the letter G followed by 3 digits") {
		t.Errorf("expected validation message in page, got %q", body)
	}
	// Submitted values are preserved for correction
	if !strings.Contains(body, `value="G01"`) || !strings.Contains(body, `value="Alice"`) {
		t.Errorf("expected submitted values preserved in form, got %q", body)
	}
}

func TestCreateStudentNonNumericAge(t *testing.T) {
	router := newStudentTestRouter(newFakeStudentStore())

	recorder := postForm(router, "/students/add", url.Values{
		"sid":  {"G001"},
		"name": {"Alice"},
		"age":  {"twenty"},
	})

	if recorder.Code != http.StatusBadRequest {
		t.Errorf("expected status 400, got %d", recorder.Code)
	}
	if body := recorder.Body.String(); !strings.Contains(body, "Age must be a whole number") {
		t.Errorf("expected age message in page, got %q", body)
	}
}

func TestCreateStudentDuplicateSIDConflict(t *testing.T) {
	store := newFakeStudentStore(&models.Student{SID: "G001", Name: "Alice", Age: 21})
	router := newStudentTestRouter(store)

	recorder := postForm(router, "/students/add", url.Values{
		"sid":  {"G001"},
		"name": {"Bob"},
		"age":  {"30"},
	})

	if recorder.Code != http.StatusConflict {
		t.Errorf("expected status 409, got %d", recorder.Code)
	}
	if body := recorder.Body.String(); !strings.Contains(body, "A student with ID G001 already exists") {
		t.Errorf("expected conflict message in page, got %q", body)
	}
	if store.students["G001"].Name != "Alice" {
		t.Error("existing student was modified on conflict")
	}
}

func TestShowEditFormNotFound(t *testing.T) {
	router := newStudentTestRouter(newFakeStudentStore())

	recorder := httptest.NewRecorder()
	request, _ := http.NewRequest(http.MethodGet, "/students/edit/G404", nil)
	router.ServeHTTP(recorder, request)

	if recorder.Code != http.StatusNotFound {
		t.Errorf("expected status 404, got %d", recorder.Code)
	}
}

func TestUpdateStudentSuccessRedirects(t *testing.T) {
	store := newFakeStudentStore(&models.Student{SID: "G001", Name: "Alice", Age: 21})
	router := newStudentTestRouter(store)

	recorder := postForm(router, "/students/edit/G001", url.Values{
		"name": {"Alicia"},
		"age":  {"22"},
	})

	if recorder.Code != http.StatusSeeOther {
		t.Errorf("expected status 303, got %d", recorder.Code)
	}
	if store.students["G001"].Name != "Alicia" {
		t.Errorf("expected updated name, got %q", store.students["G001"].Name)
	}
}
