package router

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/oksasatya/go-job-board/config"
	"github.com/oksasatya/go-job-board/internal/container"
	"github.com/oksasatya/go-job-board/internal/interface/middleware"
	"github.com/oksasatya/go-job-board/pkg/helpers"
	"github.com/oksasatya/go-job-board/pkg/validation"
)

type envelope struct {
	Status  int               `json:"status"`
	Success bool              `json:"success"`
	Message string            `json:"message"`
	Data    json.RawMessage   `json:"data"`
	Error   map[string]string `json:"error"`
}

type api struct {
	t      *testing.T
	engine *gin.Engine
}

func newAPI(t *testing.T) *api {
	t.Helper()
	gin.SetMode(gin.TestMode)
	validation.Init()

	container.Reset()
	t.Cleanup(container.Reset)
	container.SetConfig(&config.Config{
		AppName:      "Job Board",
		Env:          "test",
		StoreDriver:  config.StoreMemory,
		LogoMaxBytes: 1 << 20,
	})
	container.SetLogger(helpers.NewDiscardLogger())
	container.SetJWT(helpers.NewJWTManager("router-test-secret"))

	r := gin.New()
	r.Use(middleware.RequestID(), middleware.RealIP(false))
	reg := NewRegistry(r)
	InitModules(reg)
	reg.RegisterAll()
	return &api{t: t, engine: r}
}

// with rebinds the helper to a subtest.
func (a *api) with(t *testing.T) *api { return &api{t: t, engine: a.engine} }

func (a *api) do(method, path string, body any, token string) (*httptest.ResponseRecorder, envelope) {
	a.t.Helper()
	var buf bytes.Buffer
	if body != nil {
		if s, ok := body.(string); ok {
			buf.WriteString(s)
		} else if err := json.NewEncoder(&buf).Encode(body); err != nil {
			a.t.Fatalf("encode body: %v", err)
		}
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.AddCookie(&http.Cookie{Name: helpers.SessionCookie, Value: token})
	}
	w := httptest.NewRecorder()
	a.engine.ServeHTTP(w, req)

	var env envelope
	if w.Body.Len() > 0 {
		if err := json.Unmarshal(w.Body.Bytes(), &env); err != nil {
			a.t.Fatalf("%s %s: decode envelope: %v (%s)", method, path, err, w.Body.String())
		}
	}
	return w, env
}

func (a *api) expect(w *httptest.ResponseRecorder, status int) {
	a.t.Helper()
	if w.Code != status {
		a.t.Fatalf("expected %d, got %d: %s", status, w.Code, w.Body.String())
	}
}

func sessionCookie(w *httptest.ResponseRecorder) *http.Cookie {
	for _, c := range w.Result().Cookies() {
		if c.Name == helpers.SessionCookie {
			return c
		}
	}
	return nil
}

type userData struct {
	User struct {
		ID    string `json:"id"`
		Email string `json:"email"`
	} `json:"user"`
}

// register creates an account and returns its id and session token.
func (a *api) register(email string) (string, string) {
	a.t.Helper()
	w, env := a.do(http.MethodPost, "/api/auth/register", map[string]string{
		"name": "Test User", "email": email, "password": "secret123",
	}, "")
	a.expect(w, http.StatusCreated)
	var d userData
	if err := json.Unmarshal(env.Data, &d); err != nil {
		a.t.Fatalf("decode user: %v", err)
	}
	c := sessionCookie(w)
	if c == nil {
		a.t.Fatal("register did not set a session cookie")
	}
	return d.User.ID, c.Value
}

func (a *api) createCompany(ownerID, token string) string {
	a.t.Helper()
	w, env := a.do(http.MethodPost, "/api/companies", map[string]string{
		"name": "Acme", "description": "Widgets", "location": "Jakarta", "ownerId": ownerID,
	}, token)
	a.expect(w, http.StatusCreated)
	var d struct {
		Company struct {
			ID string `json:"id"`
		} `json:"company"`
	}
	_ = json.Unmarshal(env.Data, &d)
	return d.Company.ID
}

func (a *api) createJob(token, companyID, title string, salary any, employment string) string {
	a.t.Helper()
	w, env := a.do(http.MethodPost, "/api/jobs", map[string]any{
		"title": title, "description": title + " role", "location": "Remote", "salary": salary,
		"employment_type": employment, "job_type": "remote", "company_id": companyID,
	}, token)
	a.expect(w, http.StatusCreated)
	var d struct {
		Job struct {
			ID string `json:"id"`
		} `json:"job"`
	}
	_ = json.Unmarshal(env.Data, &d)
	return d.Job.ID
}

func TestAuthFlow(t *testing.T) {
	a := newAPI(t)

	w, env := a.do(http.MethodPost, "/api/auth/register", map[string]string{
		"name": "Ada", "email": "Ada@Example.com", "password": "secret123",
	}, "")
	a.expect(w, http.StatusCreated)
	if strings.Contains(string(env.Data), "password") {
		t.Errorf("response leaks password: %s", env.Data)
	}
	c := sessionCookie(w)
	if c == nil || !c.HttpOnly || c.SameSite != http.SameSiteStrictMode || c.Path != "/" || c.MaxAge != 3600 {
		t.Fatalf("unexpected session cookie: %+v", c)
	}

	t.Run("duplicate email conflicts", func(t *testing.T) {
		a := a.with(t)
		w, _ := a.do(http.MethodPost, "/api/auth/register", map[string]string{
			"name": "Ada", "email": "ada@example.com", "password": "secret123",
		}, "")
		a.expect(w, http.StatusConflict)
	})

	t.Run("register validation", func(t *testing.T) {
		a := a.with(t)
		w, env := a.do(http.MethodPost, "/api/auth/register", map[string]string{
			"email": "bob@example.com", "password": "short",
		}, "")
		a.expect(w, http.StatusBadRequest)
		if env.Error["name"] == "" || env.Error["password"] == "" {
			t.Errorf("expected name and password details, got %v", env.Error)
		}
	})

	t.Run("password longer than bcrypt accepts", func(t *testing.T) {
		a := a.with(t)
		w, env := a.do(http.MethodPost, "/api/auth/register", map[string]string{
			"name": "Long", "email": "long@example.com", "password": strings.Repeat("x", 80),
		}, "")
		a.expect(w, http.StatusBadRequest)
		if env.Error["password"] == "" {
			t.Errorf("expected a password detail, got %v", env.Error)
		}
	})

	t.Run("login unknown email", func(t *testing.T) {
		a := a.with(t)
		w, _ := a.do(http.MethodPost, "/api/auth/login", map[string]string{
			"email": "nobody@example.com", "password": "secret123",
		}, "")
		a.expect(w, http.StatusNotFound)
	})

	t.Run("login wrong password sets no cookie", func(t *testing.T) {
		a := a.with(t)
		w, _ := a.do(http.MethodPost, "/api/auth/login", map[string]string{
			"email": "ada@example.com", "password": "wrong-password",
		}, "")
		a.expect(w, http.StatusUnauthorized)
		if sessionCookie(w) != nil {
			t.Error("failed login must not set a session cookie")
		}
	})

	t.Run("login success and me", func(t *testing.T) {
		a := a.with(t)
		w, _ := a.do(http.MethodPost, "/api/auth/login", map[string]string{
			"email": "ada@example.com", "password": "secret123",
		}, "")
		a.expect(w, http.StatusOK)
		c := sessionCookie(w)
		if c == nil || c.Value == "" {
			t.Fatal("login did not set a session cookie")
		}
		w, env := a.do(http.MethodGet, "/api/auth/me", nil, c.Value)
		a.expect(w, http.StatusOK)
		var d userData
		_ = json.Unmarshal(env.Data, &d)
		if d.User.Email != "ada@example.com" {
			t.Errorf("me returned %+v", d.User)
		}
	})

	t.Run("me without and with bad token", func(t *testing.T) {
		a := a.with(t)
		w, env := a.do(http.MethodGet, "/api/auth/me", nil, "")
		a.expect(w, http.StatusUnauthorized)
		if env.Message != "No authentication token found" {
			t.Errorf("unexpected message %q", env.Message)
		}
		w, env = a.do(http.MethodGet, "/api/auth/me", nil, "not.a.token")
		a.expect(w, http.StatusUnauthorized)
		if env.Message != "Invalid token" {
			t.Errorf("unexpected message %q", env.Message)
		}
	})

	t.Run("logout is idempotent", func(t *testing.T) {
		a := a.with(t)
		for i := 0; i < 2; i++ {
			w, env := a.do(http.MethodPost, "/api/auth/logout", nil, "")
			a.expect(w, http.StatusOK)
			if !env.Success {
				t.Error("logout must report success")
			}
			c := sessionCookie(w)
			if c == nil || c.Value != "" || c.MaxAge >= 0 {
				t.Errorf("logout must expire the cookie, got %+v", c)
			}
		}
	})
}

func TestCompanies(t *testing.T) {
	a := newAPI(t)
	uid, token := a.register("owner@example.com")
	otherID, _ := a.register("other@example.com")

	w, _ := a.do(http.MethodPost, "/api/companies", map[string]string{
		"name": "Acme", "description": "Widgets", "location": "Jakarta", "ownerId": uid,
	}, "")
	a.expect(w, http.StatusUnauthorized)

	w, env := a.do(http.MethodPost, "/api/companies", map[string]string{
		"name": "Acme", "description": "Widgets", "location": "Jakarta",
	}, token)
	a.expect(w, http.StatusBadRequest)
	if env.Error["ownerId"] == "" {
		t.Errorf("expected ownerId detail, got %v", env.Error)
	}

	w, _ = a.do(http.MethodPost, "/api/companies", map[string]string{
		"name": "Acme", "description": "Widgets", "location": "Jakarta", "ownerId": otherID,
	}, token)
	a.expect(w, http.StatusForbidden)

	a.createCompany(uid, token)

	w, _ = a.do(http.MethodPost, "/api/companies", map[string]string{
		"name": "Acme 2", "description": "More widgets", "location": "Bandung", "ownerId": uid,
	}, token)
	a.expect(w, http.StatusConflict)

	w, _ = a.do(http.MethodGet, "/api/companies", nil, "")
	a.expect(w, http.StatusBadRequest)
	w, _ = a.do(http.MethodGet, "/api/companies?ownerId=abc", nil, "")
	a.expect(w, http.StatusBadRequest)

	var lookup struct {
		HasCompany bool            `json:"hasCompany"`
		Company    json.RawMessage `json:"company"`
	}
	w, env = a.do(http.MethodGet, "/api/companies?ownerId="+uid, nil, "")
	a.expect(w, http.StatusOK)
	_ = json.Unmarshal(env.Data, &lookup)
	if !lookup.HasCompany || string(lookup.Company) == "null" {
		t.Errorf("expected company for owner, got %s", env.Data)
	}

	w, env = a.do(http.MethodGet, "/api/companies?ownerId="+otherID, nil, "")
	a.expect(w, http.StatusOK)
	lookup.HasCompany, lookup.Company = true, nil
	_ = json.Unmarshal(env.Data, &lookup)
	if lookup.HasCompany || string(lookup.Company) != "null" {
		t.Errorf("expected no company, got %s", env.Data)
	}
}

func TestCompanyLogoUnavailableWithoutStorage(t *testing.T) {
	a := newAPI(t)
	uid, token := a.register("logo@example.com")
	companyID := a.createCompany(uid, token)

	var body bytes.Buffer
	body.WriteString("--b\r\nContent-Disposition: form-data; name=\"logo\"; filename=\"logo.png\"\r\nContent-Type: image/png\r\n\r\npng\r\n--b--\r\n")
	req := httptest.NewRequest(http.MethodPost, "/api/companies/"+companyID+"/logo", &body)
	req.Header.Set("Content-Type", "multipart/form-data; boundary=b")
	req.AddCookie(&http.Cookie{Name: helpers.SessionCookie, Value: token})
	w := httptest.NewRecorder()
	a.engine.ServeHTTP(w, req)
	a.expect(w, http.StatusServiceUnavailable)
}

func TestJobs(t *testing.T) {
	a := newAPI(t)
	uid, token := a.register("employer@example.com")
	companyID := a.createCompany(uid, token)

	t.Run("create requires auth", func(t *testing.T) {
		a := a.with(t)
		w, _ := a.do(http.MethodPost, "/api/jobs", map[string]any{"title": "x"}, "")
		a.expect(w, http.StatusUnauthorized)
	})

	t.Run("non-numeric salary rejected", func(t *testing.T) {
		a := a.with(t)
		w, env := a.do(http.MethodPost, "/api/jobs", map[string]any{
			"title": "Dev", "description": "d", "location": "l", "salary": "not-a-number",
			"employment_type": "full_time", "job_type": "remote", "company_id": companyID,
		}, token)
		a.expect(w, http.StatusBadRequest)
		if env.Message != "salary must be a whole number" {
			t.Errorf("unexpected message %q", env.Message)
		}
	})

	t.Run("salary beyond column range rejected", func(t *testing.T) {
		a := a.with(t)
		w, env := a.do(http.MethodPost, "/api/jobs", map[string]any{
			"title": "Dev", "description": "d", "location": "l", "salary": 3000000000,
			"employment_type": "full_time", "job_type": "remote", "company_id": companyID,
		}, token)
		a.expect(w, http.StatusBadRequest)
		if env.Error["salary"] == "" {
			t.Errorf("expected salary detail, got %v", env.Error)
		}

		w, env = a.do(http.MethodGet, "/api/jobs?minSalary=99999999999", nil, "")
		a.expect(w, http.StatusBadRequest)
		if env.Error["minSalary"] == "" {
			t.Errorf("expected minSalary detail, got %v", env.Error)
		}
	})

	t.Run("missing fields rejected", func(t *testing.T) {
		a := a.with(t)
		w, env := a.do(http.MethodPost, "/api/jobs", map[string]any{
			"title": "Dev", "employment_type": "seasonal", "job_type": "remote", "company_id": companyID,
		}, token)
		a.expect(w, http.StatusBadRequest)
		for _, f := range []string{"description", "location", "salary", "employment_type"} {
			if env.Error[f] == "" {
				t.Errorf("expected detail for %s, got %v", f, env.Error)
			}
		}
	})

	devID := a.createJob(token, companyID, "Developer", "85000", "full_time")
	a.createJob(token, companyID, "Designer", 40000, "part_time")
	a.createJob(token, companyID, "Ops Engineer", 120000, "contract")

	t.Run("company must exist and be owned", func(t *testing.T) {
		a := a.with(t)
		_, otherToken := a.register("intruder@example.com")
		body := map[string]any{
			"title": "Dev", "description": "d", "location": "l", "salary": 1,
			"employment_type": "full_time", "job_type": "remote", "company_id": companyID,
		}
		w, _ := a.do(http.MethodPost, "/api/jobs", body, otherToken)
		a.expect(w, http.StatusForbidden)

		body["company_id"] = "00000000-0000-4000-8000-000000000000"
		w, _ = a.do(http.MethodPost, "/api/jobs", body, otherToken)
		a.expect(w, http.StatusNotFound)
	})

	type jobsData struct {
		Jobs []struct {
			ID      string `json:"id"`
			Title   string `json:"title"`
			Salary  int    `json:"salary"`
			Company *struct {
				ID string `json:"id"`
			} `json:"company"`
		} `json:"jobs"`
	}
	list := func(a *api, query string) jobsData {
		a.t.Helper()
		w, env := a.do(http.MethodGet, "/api/jobs"+query, nil, "")
		a.expect(w, http.StatusOK)
		var d jobsData
		if err := json.Unmarshal(env.Data, &d); err != nil {
			a.t.Fatalf("decode jobs: %v", err)
		}
		return d
	}

	t.Run("list and filter", func(t *testing.T) {
		a := a.with(t)
		if got := len(list(a, "").Jobs); got != 3 {
			t.Fatalf("expected 3 jobs, got %d", got)
		}
		d := list(a, "?minSalary=50000&maxSalary=100000")
		if len(d.Jobs) != 1 || d.Jobs[0].Salary != 85000 {
			t.Errorf("salary filter returned %+v", d.Jobs)
		}
		if got := len(list(a, "?minSalary=100000&maxSalary=50000").Jobs); got != 0 {
			t.Errorf("min > max must match nothing, got %d", got)
		}
		if got := len(list(a, "?employmentType=contract").Jobs); got != 1 {
			t.Errorf("employment filter returned %d", got)
		}
		if got := len(list(a, "?q=DEV").Jobs); got != 1 {
			t.Errorf("text filter returned %d", got)
		}
		w, env := a.do(http.MethodGet, "/api/jobs?minSalary=abc", nil, "")
		a.expect(w, http.StatusBadRequest)
		if env.Error["minSalary"] == "" {
			t.Errorf("expected minSalary detail, got %v", env.Error)
		}
	})

	t.Run("search falls back to the store", func(t *testing.T) {
		a := a.with(t)
		w, env := a.do(http.MethodGet, "/api/jobs/search?q=engineer&size=5", nil, "")
		a.expect(w, http.StatusOK)
		var d jobsData
		_ = json.Unmarshal(env.Data, &d)
		if len(d.Jobs) != 1 || d.Jobs[0].Title != "Ops Engineer" {
			t.Errorf("search returned %+v", d.Jobs)
		}
		w, _ = a.do(http.MethodGet, "/api/jobs/search?size=-1", nil, "")
		a.expect(w, http.StatusBadRequest)
	})

	t.Run("suggestions", func(t *testing.T) {
		a := a.with(t)
		w, env := a.do(http.MethodGet, "/api/jobs/suggestions?q=de", nil, "")
		a.expect(w, http.StatusOK)
		var d struct {
			Suggestions []struct {
				ID    string `json:"id"`
				Title string `json:"title"`
			} `json:"suggestions"`
		}
		_ = json.Unmarshal(env.Data, &d)
		if len(d.Suggestions) != 2 {
			t.Errorf("expected Developer and Designer, got %+v", d.Suggestions)
		}
	})

	t.Run("get by id", func(t *testing.T) {
		a := a.with(t)
		w, env := a.do(http.MethodGet, "/api/jobs/"+devID, nil, "")
		a.expect(w, http.StatusOK)
		var d struct {
			Job struct {
				Salary  int `json:"salary"`
				Company *struct {
					ID string `json:"id"`
				} `json:"company"`
			} `json:"job"`
		}
		_ = json.Unmarshal(env.Data, &d)
		if d.Job.Salary != 85000 || d.Job.Company == nil || d.Job.Company.ID != companyID {
			t.Errorf("unexpected job %s", env.Data)
		}

		w, _ = a.do(http.MethodGet, "/api/jobs/not-a-uuid", nil, "")
		a.expect(w, http.StatusBadRequest)
		w, _ = a.do(http.MethodGet, "/api/jobs/00000000-0000-4000-8000-000000000000", nil, "")
		a.expect(w, http.StatusNotFound)
	})
}

func TestSavedJobs(t *testing.T) {
	a := newAPI(t)
	uid, token := a.register("saver@example.com")
	companyID := a.createCompany(uid, token)
	jobID := a.createJob(token, companyID, "Developer", 1000, "full_time")

	w, _ := a.do(http.MethodGet, "/api/saved-jobs", nil, "")
	a.expect(w, http.StatusUnauthorized)

	w, _ = a.do(http.MethodPost, "/api/saved-jobs/00000000-0000-4000-8000-000000000000", nil, token)
	a.expect(w, http.StatusNotFound)
	w, _ = a.do(http.MethodPost, "/api/saved-jobs/nope", nil, token)
	a.expect(w, http.StatusBadRequest)

	for i := 0; i < 2; i++ {
		w, _ = a.do(http.MethodPost, "/api/saved-jobs/"+jobID, nil, token)
		a.expect(w, http.StatusOK)
	}

	count := func() int {
		w, env := a.do(http.MethodGet, "/api/saved-jobs", nil, token)
		a.expect(w, http.StatusOK)
		var d struct {
			SavedJobs []json.RawMessage `json:"saved_jobs"`
		}
		_ = json.Unmarshal(env.Data, &d)
		return len(d.SavedJobs)
	}
	if got := count(); got != 1 {
		t.Fatalf("expected 1 saved job, got %d", got)
	}

	otherID := a.createJob(token, companyID, "Designer", 2000, "part_time")
	flags := func(token string) map[string]*bool {
		w, env := a.do(http.MethodGet, "/api/jobs", nil, token)
		a.expect(w, http.StatusOK)
		var d struct {
			Jobs []struct {
				ID    string `json:"id"`
				Saved *bool  `json:"saved"`
			} `json:"jobs"`
		}
		if err := json.Unmarshal(env.Data, &d); err != nil {
			t.Fatalf("decode jobs: %v", err)
		}
		out := map[string]*bool{}
		for _, j := range d.Jobs {
			out[j.ID] = j.Saved
		}
		return out
	}
	mine := flags(token)
	if mine[jobID] == nil || !*mine[jobID] || mine[otherID] == nil || *mine[otherID] {
		t.Errorf("signed-in listing must flag only the saved job, got %v", mine)
	}
	for id, saved := range flags("") {
		if saved != nil {
			t.Errorf("anonymous listing must not carry saved flags, job %s has %v", id, *saved)
		}
	}
	for id, saved := range flags("not.a.token") {
		if saved != nil {
			t.Errorf("invalid token must be treated as anonymous, job %s has %v", id, *saved)
		}
	}

	for i := 0; i < 2; i++ {
		w, _ = a.do(http.MethodDelete, "/api/saved-jobs/"+jobID, nil, token)
		a.expect(w, http.StatusOK)
	}
	if got := count(); got != 0 {
		t.Errorf("expected no saved jobs, got %d", got)
	}
}

func TestHealthz(t *testing.T) {
	a := newAPI(t)
	w, env := a.do(http.MethodGet, "/healthz", nil, "")
	a.expect(w, http.StatusOK)
	if !strings.Contains(string(env.Data), "memory") {
		t.Errorf("expected memory store, got %s", env.Data)
	}
}
