package handler_test

import (
	"bytes"
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http"
	"path/filepath"
	"testing"

	"koperasi-backend/config"
	"koperasi-backend/internal/middleware"
	"koperasi-backend/internal/model"
	"koperasi-backend/internal/routes"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

const testPassword = "password"

// setupApp membangun app lengkap di atas SQLite sementara, sehingga test
// berjalan lewat route + middleware asli.
func setupApp(t *testing.T) (*fiber.App, *gorm.DB) {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "test.db")), &gorm.Config{})
	require.NoError(t, err)
	config.Migrate(db)

	middleware.DB = db
	t.Setenv("UPLOAD_DIR", t.TempDir())

	app := fiber.New()
	routes.SetupAuthRoutes(app, db)
	routes.SetupLoanRoutes(app, db)
	routes.SetupSavingRoutes(app, db)
	routes.SetupSettlementRoutes(app, db)
	routes.SetupDashboardRoutes(app, db)

	return app, db
}

func seedUser(t *testing.T, db *gorm.DB, name, email, role string) *model.User {
	t.Helper()

	hashed, err := bcrypt.GenerateFromPassword([]byte(testPassword), bcrypt.DefaultCost)
	require.NoError(t, err)

	user := &model.User{
		Name:     name,
		Email:    email,
		Password: string(hashed),
		Role:     role,
		Phone:    "081234567890",
		Address:  "Jl. Test No. 1",
	}
	require.NoError(t, db.Create(user).Error)
	return user
}

// login mengambil token lewat endpoint login sungguhan
func login(t *testing.T, app *fiber.App, email string) string {
	t.Helper()

	resp := doJSON(t, app, http.MethodPost, "/api/login", "", fiber.Map{
		"email":    email,
		"password": testPassword,
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)

	body := decodeBody(t, resp)
	token, ok := body["token"].(string)
	require.True(t, ok, "response login harus berisi token")
	return token
}

func doJSON(t *testing.T, app *fiber.App, method, path, token string, payload interface{}) *http.Response {
	t.Helper()

	var body io.Reader
	if payload != nil {
		raw, err := json.Marshal(payload)
		require.NoError(t, err)
		body = bytes.NewReader(raw)
	}

	req, err := http.NewRequest(method, path, body)
	require.NoError(t, err)
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func decodeBody(t *testing.T, resp *http.Response) map[string]interface{} {
	t.Helper()

	defer resp.Body.Close()
	var body map[string]interface{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	return body
}

func decodeList(t *testing.T, resp *http.Response) []map[string]interface{} {
	t.Helper()

	defer resp.Body.Close()
	var list []map[string]interface{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&list))
	return list
}

// settlementForm menyusun body multipart untuk pengajuan pelunasan
func settlementForm(t *testing.T, loanID, date, filename string, content []byte) (io.Reader, string) {
	t.Helper()

	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	require.NoError(t, w.WriteField("loan_id", loanID))
	require.NoError(t, w.WriteField("settlement_date", date))

	part, err := w.CreateFormFile("proof", filename)
	require.NoError(t, err)
	_, err = part.Write(content)
	require.NoError(t, err)
	require.NoError(t, w.Close())

	return &buf, w.FormDataContentType()
}

func doForm(t *testing.T, app *fiber.App, method, path, token string, body io.Reader, contentType string) *http.Response {
	t.Helper()

	req, err := http.NewRequest(method, path, body)
	require.NoError(t, err)
	req.Header.Set("Content-Type", contentType)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}
