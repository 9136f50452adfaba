package handler

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/karibu/auth-api/internal/core/domain"
)

// stubAuthService scripts service outcomes so handler behavior can be tested
// in isolation.
type stubAuthService struct {
	registerErr error
	loginToken  string
	loginErr    error
}

func (s *stubAuthService) Register(_ context.Context, username, email, _ string) (*domain.User, error) {
	if s.registerErr != nil {
		return nil, s.registerErr
	}
	return &domain.User{ID: 1, Username: username, Email: email}, nil
}

func (s *stubAuthService) Login(context.Context, string, string) (string, *domain.User, error) {
	if s.loginErr != nil {
		return "", nil, s.loginErr
	}
	return s.loginToken, &domain.User{ID: 1, Username: "amina"}, nil
}

func (s *stubAuthService) Authenticate(context.Context, string) (*domain.User, error) {
	panic("not used")
}

// stubThrottle counts calls and optionally blocks.
type stubThrottle struct {
	blocked  bool
	failures int
	resets   int
}

func (t *stubThrottle) Allow(context.Context, string, string) (bool, error) {
	return !t.blocked, nil
}

func (t *stubThrottle) RecordFailure(context.Context, string, string) error {
	t.failures++
	return nil
}

func (t *stubThrottle) Reset(context.Context, string, string) error {
	t.resets++
	return nil
}

func newTestContext(t *testing.T, method, path, body string) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()
	e := echo.New()
	e.Validator = NewValidator()

	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func TestIndex(t *testing.T) {
	h := NewAuthHandler(&stubAuthService{}, &stubThrottle{}, zerolog.Nop())
	c, rec := newTestContext(t, http.MethodGet, "/", "")

	if err := h.Index(c); err != nil {
		t.Fatalf("Index returned error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "Authentication API is running...") {
		t.Fatalf("unexpected body: %s", rec.Body.String())
	}
}

func TestRegister_Success(t *testing.T) {
	h := NewAuthHandler(&stubAuthService{}, &stubThrottle{}, zerolog.Nop())
	c, rec := newTestContext(t, http.MethodPost, "/register",
		`{"username":"amina","email":"a@x.com","password":"Abcdef1!"}`)

	if err := h.Register(c); err != nil {
		t.Fatalf("Register returned error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "Registration successful") {
		t.Fatalf("unexpected body: %s", rec.Body.String())
	}
}

func TestRegister_ServiceErrorPropagates(t *testing.T) {
	h := NewAuthHandler(&stubAuthService{registerErr: domain.ErrEmailTaken}, &stubThrottle{}, zerolog.Nop())
	c, _ := newTestContext(t, http.MethodPost, "/register",
		`{"username":"amina","email":"a@x.com","password":"Abcdef1!"}`)

	if err := h.Register(c); !errors.Is(err, domain.ErrEmailTaken) {
		t.Fatalf("expected ErrEmailTaken, got %v", err)
	}
}

func TestRegister_MissingField(t *testing.T) {
	h := NewAuthHandler(&stubAuthService{}, &stubThrottle{}, zerolog.Nop())
	c, _ := newTestContext(t, http.MethodPost, "/register", `{"email":"a@x.com"}`)

	err := h.Register(c)
	var he *echo.HTTPError
	if !errors.As(err, &he) || he.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 HTTPError, got %v", err)
	}
}

func TestLogin_Success(t *testing.T) {
	throttle := &stubThrottle{}
	h := NewAuthHandler(&stubAuthService{loginToken: "signed-token"}, throttle, zerolog.Nop())
	c, rec := newTestContext(t, http.MethodPost, "/login",
		`{"email":"a@x.com","password":"Abcdef1!"}`)

	if err := h.Login(c); err != nil {
		t.Fatalf("Login returned error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	body := rec.Body.String()
	if !strings.Contains(body, "Login successful") || !strings.Contains(body, "signed-token") {
		t.Fatalf("unexpected body: %s", body)
	}
	if throttle.resets != 1 {
		t.Fatalf("expected throttle reset, got %d", throttle.resets)
	}
}

func TestLogin_FailureRecordsAttempt(t *testing.T) {
	throttle := &stubThrottle{}
	h := NewAuthHandler(&stubAuthService{loginErr: domain.ErrInvalidCredentials}, throttle, zerolog.Nop())
	c, _ := newTestContext(t, http.MethodPost, "/login",
		`{"email":"a@x.com","password":"wrong"}`)

	if err := h.Login(c); !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
	if throttle.failures != 1 {
		t.Fatalf("expected one recorded failure, got %d", throttle.failures)
	}
}

func TestLogin_Throttled(t *testing.T) {
	h := NewAuthHandler(&stubAuthService{loginToken: "x"}, &stubThrottle{blocked: true}, zerolog.Nop())
	c, _ := newTestContext(t, http.MethodPost, "/login",
		`{"email":"a@x.com","password":"Abcdef1!"}`)

	if err := h.Login(c); !errors.Is(err, domain.ErrTooManyAttempts) {
		t.Fatalf("expected ErrTooManyAttempts, got %v", err)
	}
}

func TestProfile_Show(t *testing.T) {
	h := NewProfileHandler()
	c, rec := newTestContext(t, http.MethodGet, "/profile", "")
	c.Set("user", &domain.User{ID: 1, Username: "amina"})

	if err := h.Show(c); err != nil {
		t.Fatalf("Show returned error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "Karibu sana, amina!") {
		t.Fatalf("unexpected body: %s", rec.Body.String())
	}
}

func TestProfile_ShowWithoutUser(t *testing.T) {
	h := NewProfileHandler()
	c, _ := newTestContext(t, http.MethodGet, "/profile", "")

	if err := h.Show(c); !errors.Is(err, domain.ErrTokenInvalid) {
		t.Fatalf("expected ErrTokenInvalid, got %v", err)
	}
}
