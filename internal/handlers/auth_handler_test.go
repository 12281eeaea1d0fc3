package handlers_test

import (
	"net/http"
	"strings"
	"testing"

	"github.com/GlobalTechServices01/shield-scheduler/internal/models"
	"github.com/GlobalTechServices01/shield-scheduler/internal/session"
)

func TestCreateAdmin(t *testing.T) {
	r, _ := setupRouter(t)

	t.Run("setup cria o admin", func(t *testing.T) {
		w := doJSON(t, r, http.MethodPost, "/api/admin/create",
			`{"username":"admin","password":"secret123"}`, "")
		if w.Code != http.StatusOK {
			t.Fatalf("esperava 200, obteve %d: %s", w.Code, w.Body.String())
		}
	})

	t.Run("username duplicado conflita", func(t *testing.T) {
		w := doJSON(t, r, http.MethodPost, "/api/admin/create",
			`{"username":"admin","password":"outrasenha"}`, "")
		if w.Code != http.StatusConflict {
			t.Errorf("esperava 409, obteve %d: %s", w.Code, w.Body.String())
		}
	})

	t.Run("senha curta é rejeitada", func(t *testing.T) {
		w := doJSON(t, r, http.MethodPost, "/api/admin/create",
			`{"username":"outro","password":"123"}`, "")
		if w.Code != http.StatusBadRequest {
			t.Errorf("esperava 400, obteve %d", w.Code)
		}
	})
}

func TestLogin(t *testing.T) {
	r, db := setupRouter(t)

	doJSON(t, r, http.MethodPost, "/api/admin/create",
		`{"username":"admin","password":"secret123"}`, "")

	t.Run("senha errada é 401 e não cria sessão", func(t *testing.T) {
		w := doJSON(t, r, http.MethodPost, "/api/admin/login",
			`{"username":"admin","password":"wrongpass"}`, "")
		if w.Code != http.StatusUnauthorized {
			t.Fatalf("esperava 401, obteve %d", w.Code)
		}

		var count int64
		db.Model(&models.Session{}).Count(&count)
		if count != 0 {
			t.Errorf("login falho não deveria tocar sessões, há %d", count)
		}
	})

	t.Run("usuário inexistente responde igual a senha errada", func(t *testing.T) {
		w := doJSON(t, r, http.MethodPost, "/api/admin/login",
			`{"username":"fantasma","password":"secret123"}`, "")
		if w.Code != http.StatusUnauthorized {
			t.Fatalf("esperava 401, obteve %d", w.Code)
		}

		body := decodeBody(t, w)
		if body["error_code"] != "invalid_credentials" {
			t.Errorf("código não deve revelar se o usuário existe: %v", body)
		}
	})

	t.Run("credenciais corretas criam sessão e cookie", func(t *testing.T) {
		w := doJSON(t, r, http.MethodPost, "/api/admin/login",
			`{"username":"admin","password":"secret123"}`, "")
		if w.Code != http.StatusOK {
			t.Fatalf("esperava 200, obteve %d: %s", w.Code, w.Body.String())
		}

		body := decodeBody(t, w)
		admin, _ := body["admin"].(map[string]any)
		if admin["username"] != "admin" || admin["role"] != "admin" {
			t.Errorf("perfil inesperado: %v", admin)
		}

		if len(w.Result().Cookies()) == 0 {
			t.Error("cookie de sessão não foi definido")
		}
	})
}

func TestMe(t *testing.T) {
	r, db := setupRouter(t)

	t.Run("sem cookie é 401", func(t *testing.T) {
		w := doJSON(t, r, http.MethodGet, "/api/admin/me", "", "")
		if w.Code != http.StatusUnauthorized {
			t.Errorf("esperava 401, obteve %d", w.Code)
		}
	})

	t.Run("com sessão válida devolve o perfil", func(t *testing.T) {
		cookie := loginAsAdmin(t, r)

		w := doJSON(t, r, http.MethodGet, "/api/admin/me", "", cookie)
		if w.Code != http.StatusOK {
			t.Fatalf("esperava 200, obteve %d: %s", w.Code, w.Body.String())
		}

		body := decodeBody(t, w)
		admin, _ := body["admin"].(map[string]any)
		if admin["username"] != "admin" {
			t.Errorf("perfil inesperado: %v", body)
		}
	})

	t.Run("admin removido invalida a sessão", func(t *testing.T) {
		cookie := loginAsAdmin(t, r)

		if err := db.Where("username = ?", "admin").
			Delete(&models.AdminUser{}).Error; err != nil {
			t.Fatalf("setup: %v", err)
		}

		w := doJSON(t, r, http.MethodGet, "/api/admin/me", "", cookie)
		if w.Code != http.StatusUnauthorized {
			t.Fatalf("esperava 401, obteve %d", w.Code)
		}

		// a sessão órfã foi destruída como efeito colateral
		token := strings.TrimPrefix(cookie, session.CookieName+"=")
		var count int64
		db.Model(&models.Session{}).Where("token = ?", token).Count(&count)
		if count != 0 {
			t.Error("sessão órfã deveria ter sido destruída")
		}
	})
}

func TestLogout(t *testing.T) {
	r, _ := setupRouter(t)

	t.Run("logout com sessão encerra e é 200", func(t *testing.T) {
		cookie := loginAsAdmin(t, r)

		w := doJSON(t, r, http.MethodPost, "/api/admin/logout", "", cookie)
		if w.Code != http.StatusOK {
			t.Fatalf("esperava 200, obteve %d", w.Code)
		}

		after := doJSON(t, r, http.MethodGet, "/api/admin/me", "", cookie)
		if after.Code != http.StatusUnauthorized {
			t.Errorf("sessão deveria estar morta, obteve %d", after.Code)
		}
	})

	t.Run("logout sem sessão também é 200", func(t *testing.T) {
		w := doJSON(t, r, http.MethodPost, "/api/admin/logout", "", "")
		if w.Code != http.StatusOK {
			t.Errorf("logout é sempre 200 para o cliente, obteve %d", w.Code)
		}
	})
}

func TestAdminGate(t *testing.T) {
	r, _ := setupRouter(t)

	paths := []struct {
		method string
		path   string
	}{
		{http.MethodGet, "/api/admin/appointments"},
		{http.MethodPut, "/api/admin/appointments/1"},
		{http.MethodDelete, "/api/admin/appointments/1"},
		{http.MethodGet, "/api/admin/appointments/export"},
		{http.MethodGet, "/api/admin/audit-logs"},
	}

	for _, p := range paths {
		t.Run(p.method+" "+p.path+" sem sessão é 401", func(t *testing.T) {
			w := doJSON(t, r, p.method, p.path, "{}", "")
			if w.Code != http.StatusUnauthorized {
				t.Errorf("esperava 401, obteve %d", w.Code)
			}
		})
	}
}
