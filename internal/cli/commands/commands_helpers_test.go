package commands

import (
	"bytes"
	"fmt"
	"net/http/httptest"
	"path/filepath"
	"runtime"
	"strings"
	"testing"
	"time"

	"go.uber.org/zap"

	"github.com/tianxinyueming/idealyard/internal/config"
	"github.com/tianxinyueming/idealyard/internal/handlers"
	"github.com/tianxinyueming/idealyard/internal/repo"
	"github.com/tianxinyueming/idealyard/internal/service"
)

// withTempConfig переопределяет пользовательские каталоги на время теста,
// чтобы артефакты (токен/логин) создавались в temp.
func withTempConfig(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	if runtime.GOOS == "windows" {
		t.Setenv("APPDATA", dir)
	} else {
		t.Setenv("XDG_CONFIG_HOME", dir)
	}
	return dir
}

// перехват stdout на время теста
func withStdoutCapture(t *testing.T, fn func()) string {
	t.Helper()
	old := Out
	var buf bytes.Buffer
	Out = &buf
	defer func() { Out = old }()
	fn()
	return buf.String()
}

// withInput подставляет ответы на подтверждения.
func withInput(t *testing.T, answers string) {
	t.Helper()
	old := In
	In = strings.NewReader(answers)
	t.Cleanup(func() { In = old })
}

// newTestConfig поднимает настоящий сервер на in-memory SQLite и
// возвращает клиентский конфиг, смотрящий на него.
func newTestConfig(t *testing.T) *config.Config {
	t.Helper()
	dir := withTempConfig(t)

	name := strings.NewReplacer("/", "_", " ", "_").Replace(t.Name())
	db, err := repo.InitDB(fmt.Sprintf("file:%s?mode=memory&cache=shared", name))
	if err != nil {
		t.Fatalf("init db: %v", err)
	}
	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			_ = sqlDB.Close()
		}
	})

	srvCfg := &config.Config{AuthSecret: "cli-test", TokenTTL: time.Hour, AuthRateLimit: 1000}
	h := handlers.NewHandler(service.NewUserService(repo.NewUserRepository(db)), zap.NewNop().Sugar(), srvCfg)
	ts := httptest.NewServer(h.Router)
	t.Cleanup(ts.Close)

	return &config.Config{ServerURL: ts.URL, TokenFile: filepath.Join(dir, "token")}
}

