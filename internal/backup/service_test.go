package backup

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/madisvain/upcount/internal/config"
	storage "github.com/madisvain/upcount/pkg/db"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestService(t *testing.T) (*Service, config.Config) {
	t.Helper()
	cfg := config.Config{AppName: "upcount", DataDir: t.TempDir(), LogLevel: "info"}
	return NewService(cfg, zap.NewNop()), cfg
}

func writeLiveDatabase(t *testing.T, cfg config.Config, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(cfg.DatabasePath(), []byte(content), 0o644))
}

func TestBackupCopiesLiveFile(t *testing.T) {
	svc, cfg := newTestService(t)
	writeLiveDatabase(t, cfg, "live-bytes")

	dest := filepath.Join(t.TempDir(), "backup.db")
	got, err := svc.Backup(context.Background(), dest)
	require.NoError(t, err)
	assert.Equal(t, dest, got)

	copied, err := os.ReadFile(dest)
	require.NoError(t, err)
	assert.Equal(t, "live-bytes", string(copied))

	// The live file is untouched.
	live, err := os.ReadFile(cfg.DatabasePath())
	require.NoError(t, err)
	assert.Equal(t, "live-bytes", string(live))
}

func TestBackupWithoutLiveFile(t *testing.T) {
	svc, _ := newTestService(t)

	_, err := svc.Backup(context.Background(), filepath.Join(t.TempDir(), "backup.db"))
	require.Error(t, err)
	assert.True(t, storage.IsNotFound(err))
}

func TestRestoreReplacesLiveFile(t *testing.T) {
	svc, cfg := newTestService(t)
	writeLiveDatabase(t, cfg, "old-bytes")

	src := filepath.Join(t.TempDir(), "snapshot.db")
	require.NoError(t, os.WriteFile(src, []byte("snapshot-bytes"), 0o644))

	message, err := svc.Restore(context.Background(), src)
	require.NoError(t, err)
	assert.Contains(t, message, src)
	assert.Contains(t, message, "Restart the application")

	live, err := os.ReadFile(cfg.DatabasePath())
	require.NoError(t, err)
	assert.Equal(t, "snapshot-bytes", string(live))

	// The aside copy is removed after a successful restore.
	_, err = os.Stat(cfg.DatabasePath() + ".backup")
	assert.True(t, os.IsNotExist(err))
}

func TestRestoreWithoutLiveFile(t *testing.T) {
	svc, cfg := newTestService(t)

	src := filepath.Join(t.TempDir(), "snapshot.db")
	require.NoError(t, os.WriteFile(src, []byte("snapshot-bytes"), 0o644))

	_, err := svc.Restore(context.Background(), src)
	require.NoError(t, err)

	live, err := os.ReadFile(cfg.DatabasePath())
	require.NoError(t, err)
	assert.Equal(t, "snapshot-bytes", string(live))
}

func TestRestoreMissingSource(t *testing.T) {
	svc, _ := newTestService(t)

	_, err := svc.Restore(context.Background(), filepath.Join(t.TempDir(), "missing.db"))
	require.Error(t, err)
	assert.True(t, storage.IsNotFound(err))
}

func TestBackupRestoreRoundTrip(t *testing.T) {
	svc, cfg := newTestService(t)
	writeLiveDatabase(t, cfg, "generation-1")

	dest := filepath.Join(t.TempDir(), DefaultBackupFilename(time.Now()))
	_, err := svc.Backup(context.Background(), dest)
	require.NoError(t, err)

	writeLiveDatabase(t, cfg, "generation-2")

	_, err = svc.Restore(context.Background(), dest)
	require.NoError(t, err)

	live, err := os.ReadFile(cfg.DatabasePath())
	require.NoError(t, err)
	assert.Equal(t, "generation-1", string(live))
}

func TestDefaultBackupFilename(t *testing.T) {
	moment := time.Date(2024, 3, 9, 23, 30, 0, 0, time.FixedZone("UTC+5", 5*3600))
	assert.Equal(t, "upcount-backup-2024-03-09.db", DefaultBackupFilename(moment))
}

func TestBackupCancelledContext(t *testing.T) {
	svc, cfg := newTestService(t)
	writeLiveDatabase(t, cfg, "live-bytes")

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := svc.Backup(ctx, filepath.Join(t.TempDir(), "backup.db"))
	require.Error(t, err)
}
