package routes

import (
	"bytes"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/arsuntagsmr-eng/seminar-app/internal/domain/models"
	"github.com/arsuntagsmr-eng/seminar-app/internal/domain/services"
	"github.com/arsuntagsmr-eng/seminar-app/internal/infrastructure/config"
)

var pdfBytes = []byte("%PDF-1.4\n1 0 obj\n<<>>\nendobj\ntrailer\n<<>>\n%%EOF\n")

func newTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	return newTestRouterMaxUpload(t, 10)
}

func newTestRouterMaxUpload(t *testing.T, maxUploadMB int) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger:         gormlogger.Default.LogMode(gormlogger.Silent),
		TranslateError: true,
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.Participant{}))

	cfg := &config.Config{
		ServerPort:      "4000",
		UploadDir:       t.TempDir(),
		MaxUploadSizeMB: maxUploadMB,
		JWTSecretKey:    "test-secret",
		AdminPassword:   "rahasia",
	}

	return SetupRouter(db, cfg, nil)
}

// registerForm 构造multipart报名请求，fileContent为nil时不附带文件
func registerForm(t *testing.T, fields map[string]string, fileContent []byte) *http.Request {
	t.Helper()

	body := &bytes.Buffer{}
	w := multipart.NewWriter(body)
	for k, v := range fields {
		require.NoError(t, w.WriteField(k, v))
	}
	if fileContent != nil {
		part, err := w.CreateFormFile("berkas", "proposal.pdf")
		require.NoError(t, err)
		_, err = part.Write(fileContent)
		require.NoError(t, err)
	}
	require.NoError(t, w.Close())

	req := httptest.NewRequest(http.MethodPost, "/api/register", body)
	req.Header.Set("Content-Type", w.FormDataContentType())
	return req
}

func do(r *gin.Engine, req *http.Request) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

func loginToken(t *testing.T, r *gin.Engine, password string) string {
	t.Helper()

	body, _ := json.Marshal(map[string]string{"password": password})
	req := httptest.NewRequest(http.MethodPost, "/api/admin/login", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	rec := do(r, req)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.NotEmpty(t, resp["token"])
	return resp["token"]
}

func authedRequest(method, path, token string) *http.Request {
	req := httptest.NewRequest(method, path, nil)
	req.Header.Set("Authorization", "Bearer "+token)
	return req
}

func TestHealthEndpoint(t *testing.T) {
	r := newTestRouter(t)

	rec := do(r, httptest.NewRequest(http.MethodGet, "/api/health", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"ok":true}`, rec.Body.String())
}

func TestRegistrationFlow(t *testing.T) {
	r := newTestRouter(t)

	// 成功报名
	fields := map[string]string{
		"nama":  "Ana",
		"nim":   "12345678",
		"prodi": "Informatika",
		"judul": "Thesis X",
	}
	rec := do(r, registerForm(t, fields, nil))
	require.Equal(t, http.StatusOK, rec.Code)

	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, true, resp["ok"])
	assert.NotEmpty(t, resp["id"])

	// 同一NIM重复报名
	rec = do(r, registerForm(t, fields, nil))
	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.Contains(t, rec.Body.String(), "NIM sudah terdaftar")

	// NIM格式错误
	bad := map[string]string{"nama": "Ana", "nim": "123", "judul": "Thesis X"}
	rec = do(r, registerForm(t, bad, nil))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "Format NIM tidak valid")

	// 缺少必填字段
	missing := map[string]string{"nim": "87654321"}
	rec = do(r, registerForm(t, missing, nil))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "Field wajib")
}

func TestAdminLogin(t *testing.T) {
	r := newTestRouter(t)

	// 密码错误
	body, _ := json.Marshal(map[string]string{"password": "salah"})
	req := httptest.NewRequest(http.MethodPost, "/api/admin/login", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := do(r, req)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	// 缺少密码
	req = httptest.NewRequest(http.MethodPost, "/api/admin/login", strings.NewReader(`{}`))
	req.Header.Set("Content-Type", "application/json")
	rec = do(r, req)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	// 登录成功
	token := loginToken(t, r, "rahasia")
	assert.NotEmpty(t, token)
}

func TestParticipantEndpointsRequireAuth(t *testing.T) {
	r := newTestRouter(t)

	rec := do(r, httptest.NewRequest(http.MethodGet, "/api/participants", nil))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	rec = do(r, authedRequest(http.MethodGet, "/api/participants", "bukan-token"))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

// 签名有效但角色不是admin的令牌只能拿到403
func TestParticipantEndpointsRejectNonAdminRole(t *testing.T) {
	r := newTestRouter(t)

	jwtService := services.NewJWTService(&config.Config{JWTSecretKey: "test-secret"})
	token, err := jwtService.GenerateToken("user")
	require.NoError(t, err)

	rec := do(r, authedRequest(http.MethodGet, "/api/participants", token))
	assert.Equal(t, http.StatusForbidden, rec.Code)

	rec = do(r, authedRequest(http.MethodDelete, "/api/participants/some-id", token))
	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestRegisterOversizeFile(t *testing.T) {
	r := newTestRouterMaxUpload(t, 1)

	// 1MiB限制下上传超限的PDF
	payload := append(append([]byte{}, pdfBytes...), make([]byte, 1<<20)...)
	fields := map[string]string{"nama": "Ana", "nim": "12345678", "judul": "Thesis X"}

	rec := do(r, registerForm(t, fields, payload))
	assert.Equal(t, http.StatusRequestEntityTooLarge, rec.Code)
	assert.Contains(t, rec.Body.String(), "Ukuran berkas melebihi batas maksimum.")
}

func TestAdminDirectoryFlow(t *testing.T) {
	r := newTestRouter(t)

	// 带文件的报名
	fields := map[string]string{"nama": "Ana", "nim": "12345678", "judul": "Thesis X"}
	rec := do(r, registerForm(t, fields, pdfBytes))
	require.Equal(t, http.StatusOK, rec.Code)

	token := loginToken(t, r, "rahasia")

	// 列表包含刚刚的报名
	rec = do(r, authedRequest(http.MethodGet, "/api/participants", token))
	require.Equal(t, http.StatusOK, rec.Code)

	var list []models.Participant
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &list))
	require.Len(t, list, 1)
	assert.Equal(t, "12345678", list[0].NIM)
	require.NotNil(t, list[0].Berkas)

	// 上传的文件可以直接读取
	rec = do(r, httptest.NewRequest(http.MethodGet, "/uploads/"+*list[0].Berkas, nil))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, pdfBytes, rec.Body.Bytes())

	// CSV导出：一行表头 + 一行数据
	rec = do(r, authedRequest(http.MethodGet, "/api/participants/export", token))
	require.Equal(t, http.StatusOK, rec.Code)
	lines := strings.Split(strings.TrimSpace(rec.Body.String()), "\n")
	require.Len(t, lines, 2)
	assert.Equal(t, "id,nama,nim,prodi,dosen,judul,tanggal,berkas,waktu_daftar", strings.TrimSpace(lines[0]))

	// 删除报名，记录与文件一起消失
	berkas := *list[0].Berkas
	rec = do(r, authedRequest(http.MethodDelete, "/api/participants/"+list[0].ID, token))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"ok":true}`, rec.Body.String())

	rec = do(r, authedRequest(http.MethodGet, "/api/participants", token))
	require.Equal(t, http.StatusOK, rec.Code)
	var after []models.Participant
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &after))
	assert.Empty(t, after)

	rec = do(r, httptest.NewRequest(http.MethodGet, "/uploads/"+berkas, nil))
	assert.Equal(t, http.StatusNotFound, rec.Code)

	// 再删一次 → 404
	rec = do(r, authedRequest(http.MethodDelete, "/api/participants/"+list[0].ID, token))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}
