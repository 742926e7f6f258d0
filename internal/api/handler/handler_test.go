package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/Looz41/Diplom-sub000/internal/dto"
	"github.com/Looz41/Diplom-sub000/internal/repository"
	"github.com/Looz41/Diplom-sub000/internal/service"
	"github.com/Looz41/Diplom-sub000/pkg/response"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// ── mock-сервисы ──

type mockAuthService struct {
	registerResult *dto.UserResponse
	registerErr    error
	loginResult    *dto.TokenResponse
	loginErr       error
	logoutErr      error
	listResult     []dto.UserResponse
	listErr        error
}

func (m *mockAuthService) Register(_ context.Context, _ *dto.RegisterRequest) (*dto.UserResponse, error) {
	return m.registerResult, m.registerErr
}
func (m *mockAuthService) Login(_ context.Context, _ *dto.LoginRequest) (*dto.TokenResponse, error) {
	return m.loginResult, m.loginErr
}
func (m *mockAuthService) Logout(_ context.Context, _ string, _ time.Time) error {
	return m.logoutErr
}
func (m *mockAuthService) ListUsers(_ context.Context) ([]dto.UserResponse, error) {
	return m.listResult, m.listErr
}

type mockScheduleService struct {
	addResult  *dto.ScheduleResponse
	addErr     error
	listResult []dto.ScheduleResponse
	listErr    error
	editResult *dto.ScheduleResponse
	editErr    error
}

func (m *mockScheduleService) Add(_ context.Context, _ *dto.AddScheduleRequest) (*dto.ScheduleResponse, error) {
	return m.addResult, m.addErr
}
func (m *mockScheduleService) List(_ context.Context, _ *dto.ScheduleListRequest) ([]dto.ScheduleResponse, error) {
	return m.listResult, m.listErr
}
func (m *mockScheduleService) Edit(_ context.Context, _ *dto.EditScheduleRequest) (*dto.ScheduleResponse, error) {
	return m.editResult, m.editErr
}

type mockTeacherService struct {
	addResult       *dto.TeacherResponse
	addErr          error
	getResult       *dto.TeacherResponse
	getErr          error
	listResult      []dto.TeacherResponse
	listErr         error
	byDisciplineRes *dto.TeachersByDisciplineResponse
	byDisciplineErr error
	editResult      *dto.TeacherResponse
	editErr         error
	deleteErr       error
}

func (m *mockTeacherService) Add(_ context.Context, _ *dto.AddTeacherRequest) (*dto.TeacherResponse, error) {
	return m.addResult, m.addErr
}
func (m *mockTeacherService) GetByID(_ context.Context, _ string) (*dto.TeacherResponse, error) {
	return m.getResult, m.getErr
}
func (m *mockTeacherService) List(_ context.Context) ([]dto.TeacherResponse, error) {
	return m.listResult, m.listErr
}
func (m *mockTeacherService) GetByDiscipline(_ context.Context, _ *dto.TeachersByDisciplineRequest) (*dto.TeachersByDisciplineResponse, error) {
	return m.byDisciplineRes, m.byDisciplineErr
}
func (m *mockTeacherService) Edit(_ context.Context, _ *dto.EditTeacherRequest) (*dto.TeacherResponse, error) {
	return m.editResult, m.editErr
}
func (m *mockTeacherService) Delete(_ context.Context, _ string) error {
	return m.deleteErr
}

type mockFacultyService struct {
	addResult *dto.FacultyResponse
	addErr    error
	getAllRes []dto.FacultyResponse
	getAllErr error
	getOneRes *dto.FacultyResponse
	getOneErr error
	editRes   *dto.FacultyResponse
	editErr   error
	deleteErr error
}

func (m *mockFacultyService) Add(_ context.Context, _ *dto.AddFacultyRequest) (*dto.FacultyResponse, error) {
	return m.addResult, m.addErr
}
func (m *mockFacultyService) GetAll(_ context.Context) ([]dto.FacultyResponse, error) {
	return m.getAllRes, m.getAllErr
}
func (m *mockFacultyService) GetOne(_ context.Context, _ string) (*dto.FacultyResponse, error) {
	return m.getOneRes, m.getOneErr
}
func (m *mockFacultyService) Edit(_ context.Context, _ *dto.EditFacultyRequest) (*dto.FacultyResponse, error) {
	return m.editRes, m.editErr
}
func (m *mockFacultyService) Delete(_ context.Context, _ string) error {
	return m.deleteErr
}

type mockExportService struct {
	buf      *bytes.Buffer
	filename string
	err      error
}

func (m *mockExportService) ExportExcel(_ context.Context, _ repository.ScheduleFilter) (*bytes.Buffer, string, error) {
	return m.buf, m.filename, m.err
}
func (m *mockExportService) ExportICS(_ context.Context, _ repository.ScheduleFilter) (*bytes.Buffer, string, error) {
	return m.buf, m.filename, m.err
}

// ── обвязка ──

func jsonBody(v interface{}) io.Reader {
	b, _ := json.Marshal(v)
	return bytes.NewReader(b)
}

func parseResponse(w *httptest.ResponseRecorder) response.Response {
	var resp response.Response
	json.Unmarshal(w.Body.Bytes(), &resp)
	return resp
}

// ── AuthHandler ──

func TestAuthHandler_Login_Success(t *testing.T) {
	mock := &mockAuthService{
		loginResult: &dto.TokenResponse{Token: "test-token", ExpiresIn: 86400},
	}
	h := NewAuthHandler(mock)

	w := httptest.NewRecorder()
	req := httptest.NewRequest("POST", "/auth/login", jsonBody(dto.LoginRequest{
		Username: "petrov", Password: "secret123",
	}))
	req.Header.Set("Content-Type", "application/json")

	r := gin.New()
	r.POST("/auth/login", h.Login)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Errorf("ожидался 200, получен %d", w.Code)
	}
	if resp := parseResponse(w); resp.Code != 0 {
		t.Errorf("ожидался code 0, получен %d", resp.Code)
	}
}

func TestAuthHandler_Login_InvalidCredentials(t *testing.T) {
	mock := &mockAuthService{loginErr: service.ErrInvalidCredentials}
	h := NewAuthHandler(mock)

	w := httptest.NewRecorder()
	req := httptest.NewRequest("POST", "/auth/login", jsonBody(dto.LoginRequest{
		Username: "petrov", Password: "wrong",
	}))
	req.Header.Set("Content-Type", "application/json")

	r := gin.New()
	r.POST("/auth/login", h.Login)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Errorf("ожидался 400, получен %d", w.Code)
	}
}

func TestAuthHandler_Register_BadJSON(t *testing.T) {
	h := NewAuthHandler(&mockAuthService{})

	w := httptest.NewRecorder()
	req := httptest.NewRequest("POST", "/auth/registration", bytes.NewReader([]byte("не json")))
	req.Header.Set("Content-Type", "application/json")

	r := gin.New()
	r.POST("/auth/registration", h.Register)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Errorf("ожидался 400, получен %d", w.Code)
	}
}

func TestAuthHandler_Register_Duplicate(t *testing.T) {
	h := NewAuthHandler(&mockAuthService{registerErr: service.ErrUserExists})

	w := httptest.NewRecorder()
	req := httptest.NewRequest("POST", "/auth/registration", jsonBody(dto.RegisterRequest{
		Username: "petrov", Password: "secret123",
	}))
	req.Header.Set("Content-Type", "application/json")

	r := gin.New()
	r.POST("/auth/registration", h.Register)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusConflict {
		t.Errorf("ожидался 409, получен %d", w.Code)
	}
}

// ── ScheduleHandler ──

func TestScheduleHandler_Add_Conflict(t *testing.T) {
	h := NewScheduleHandler(&mockScheduleService{addErr: service.ErrScheduleConflict})

	w := httptest.NewRecorder()
	req := httptest.NewRequest("POST", "/schedule/add", jsonBody(dto.AddScheduleRequest{
		Date: "2026-03-02", Group: "grp-1",
	}))
	req.Header.Set("Content-Type", "application/json")

	r := gin.New()
	r.POST("/schedule/add", h.Add)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusConflict {
		t.Errorf("ожидался 409, получен %d", w.Code)
	}
}

func TestScheduleHandler_Add_TeacherNotTeaching(t *testing.T) {
	h := NewScheduleHandler(&mockScheduleService{addErr: service.ErrTeacherNotTeaching})

	w := httptest.NewRecorder()
	req := httptest.NewRequest("POST", "/schedule/add", jsonBody(dto.AddScheduleRequest{
		Date: "2026-03-02", Group: "grp-1",
	}))
	req.Header.Set("Content-Type", "application/json")

	r := gin.New()
	r.POST("/schedule/add", h.Add)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Errorf("ожидался 400, получен %d", w.Code)
	}
}

func TestScheduleHandler_Add_GroupNotFound(t *testing.T) {
	h := NewScheduleHandler(&mockScheduleService{addErr: service.ErrGroupNotFound})

	w := httptest.NewRecorder()
	req := httptest.NewRequest("POST", "/schedule/add", jsonBody(dto.AddScheduleRequest{
		Date: "2026-03-02", Group: "grp-missing",
	}))
	req.Header.Set("Content-Type", "application/json")

	r := gin.New()
	r.POST("/schedule/add", h.Add)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusNotFound {
		t.Errorf("ожидался 404, получен %d", w.Code)
	}
}

func TestScheduleHandler_GetAll_Success(t *testing.T) {
	h := NewScheduleHandler(&mockScheduleService{
		listResult: []dto.ScheduleResponse{{ID: "sch-1", Date: "2026-03-02"}},
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/schedule/get?date=2026-03-02", nil)

	r := gin.New()
	r.GET("/schedule/get", h.GetAll)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Errorf("ожидался 200, получен %d", w.Code)
	}
}

// ── FacultyHandler ──

func TestFacultyHandler_GetAll_PayloadKey(t *testing.T) {
	h := NewFacultyHandler(&mockFacultyService{
		getAllRes: []dto.FacultyResponse{{ID: "fac-1", Name: "ФИТ"}},
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/facultet/get", nil)

	r := gin.New()
	r.GET("/facultet/get", h.GetAll)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("ожидался 200, получен %d", w.Code)
	}

	var body struct {
		Data struct {
			Facultets []dto.FacultyResponse `json:"facultets"`
		} `json:"data"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("разбор ответа: %v", err)
	}
	if len(body.Data.Facultets) != 1 || body.Data.Facultets[0].Name != "ФИТ" {
		t.Errorf("список факультетов должен лежать под ключом facultets, тело: %s", w.Body.String())
	}
}

// ── TeacherHandler ──

func TestTeacherHandler_GetByDiscipline_MissingParams(t *testing.T) {
	h := NewTeacherHandler(&mockTeacherService{})

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/teacher/getTeacherByDiscipline", nil)

	r := gin.New()
	r.GET("/teacher/getTeacherByDiscipline", h.GetByDiscipline)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Errorf("ожидался 400, получен %d", w.Code)
	}
}

func TestTeacherHandler_GetByDiscipline_Success(t *testing.T) {
	h := NewTeacherHandler(&mockTeacherService{
		byDisciplineRes: &dto.TeachersByDisciplineResponse{
			Teachers:     []dto.TeacherResponse{{ID: "t1", Surname: "Иванов"}},
			TeachersFree: []dto.TeacherResponse{{ID: "t1", Surname: "Иванов"}},
		},
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/teacher/getTeacherByDiscipline?id=dis-1&date=2026-03-02", nil)

	r := gin.New()
	r.GET("/teacher/getTeacherByDiscipline", h.GetByDiscipline)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Errorf("ожидался 200, получен %d", w.Code)
	}
}

func TestTeacherHandler_Delete_MissingID(t *testing.T) {
	h := NewTeacherHandler(&mockTeacherService{})

	w := httptest.NewRecorder()
	req := httptest.NewRequest("DELETE", "/teacher/delete", nil)

	r := gin.New()
	r.DELETE("/teacher/delete", h.Delete)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Errorf("ожидался 400, получен %d", w.Code)
	}
}

// ── ExportHandler ──

func TestExportHandler_ExportExcel_Success(t *testing.T) {
	h := NewExportHandler(&mockExportService{
		buf:      bytes.NewBufferString("PK stub"),
		filename: "raspisanie.xlsx",
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/schedule/getExcel", nil)

	r := gin.New()
	r.GET("/schedule/getExcel", h.ExportExcel)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Errorf("ожидался 200, получен %d", w.Code)
	}
	if ct := w.Header().Get("Content-Type"); ct != xlsxContentType {
		t.Errorf("неверный Content-Type: %s", ct)
	}
	if cd := w.Header().Get("Content-Disposition"); cd == "" {
		t.Error("нет Content-Disposition")
	}
}

func TestExportHandler_ExportExcel_Empty(t *testing.T) {
	h := NewExportHandler(&mockExportService{err: service.ErrExportEmpty})

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/schedule/getExcel", nil)

	r := gin.New()
	r.GET("/schedule/getExcel", h.ExportExcel)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusNotFound {
		t.Errorf("ожидался 404, получен %d", w.Code)
	}
}

func TestExportHandler_ExportExcel_BadDate(t *testing.T) {
	h := NewExportHandler(&mockExportService{})

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/schedule/getExcel?date=02.03.2026", nil)

	r := gin.New()
	r.GET("/schedule/getExcel", h.ExportExcel)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Errorf("ожидался 400, получен %d", w.Code)
	}
}
