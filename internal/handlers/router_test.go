package handlers_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/GlobalTechServices01/shield-scheduler/internal/models"
	"github.com/GlobalTechServices01/shield-scheduler/internal/routes"
	"github.com/GlobalTechServices01/shield-scheduler/internal/session"
)

func setupRouter(t *testing.T) (*gin.Engine, *gorm.DB) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		TranslateError: true,
	})
	if err != nil {
		t.Fatalf("falha ao abrir sqlite: %v", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("falha ao obter sql.DB: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)

	if err := db.AutoMigrate(
		&models.AdminUser{},
		&models.Appointment{},
		&models.Session{},
		&models.AuditLog{},
	); err != nil {
		t.Fatalf("falha ao migrar: %v", err)
	}

	// mesmo índice parcial criado na migração de produção
	db.Exec(`
        CREATE UNIQUE INDEX IF NOT EXISTS idx_appointments_confirmed_slot
        ON appointments (appointment_date, appointment_time)
        WHERE status = 'confirmado'
    `)

	r := gin.New()
	routes.RegisterRoutes(r, db, session.NewGormStore(db))

	return r, db
}

func doJSON(
	t *testing.T,
	r *gin.Engine,
	method string,
	path string,
	body string,
	cookie string,
) *httptest.ResponseRecorder {
	t.Helper()

	var reader *strings.Reader
	if body != "" {
		reader = strings.NewReader(body)
	} else {
		reader = strings.NewReader("")
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if cookie != "" {
		req.Header.Set("Cookie", cookie)
	}

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()

	var out map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &out); err != nil {
		t.Fatalf("resposta não é JSON: %v\n%s", err, w.Body.String())
	}
	return out
}

// loginAsAdmin cria o admin de setup (se necessário) e devolve o cookie
// de sessão pronto para os endpoints protegidos.
func loginAsAdmin(t *testing.T, r *gin.Engine) string {
	t.Helper()

	doJSON(t, r, http.MethodPost, "/api/admin/create",
		`{"username":"admin","password":"secret123"}`, "")

	w := doJSON(t, r, http.MethodPost, "/api/admin/login",
		`{"username":"admin","password":"secret123"}`, "")
	if w.Code != http.StatusOK {
		t.Fatalf("login de setup falhou: %d %s", w.Code, w.Body.String())
	}

	for _, c := range w.Result().Cookies() {
		if c.Name == session.CookieName {
			return c.Name + "=" + c.Value
		}
	}

	t.Fatal("login não devolveu cookie de sessão")
	return ""
}
