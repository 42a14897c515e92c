package backup

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/madisvain/upcount/internal/config"
	storage "github.com/madisvain/upcount/pkg/db"
	"go.uber.org/zap"
)

// Service copies the live database file out (backup) and replaces it in
// (restore). The file is not quiesced during copy: under the single-user
// desktop assumption the engine's durability guarantees are treated as
// sufficient, so a backup taken mid-write is best effort.
type Service struct {
	cfg config.Config
	log *zap.Logger
}

func NewService(cfg config.Config, log *zap.Logger) *Service {
	return &Service{cfg: cfg, log: log}
}

// DefaultBackupFilename returns the suggested backup file name for the given
// moment, in UTC.
func DefaultBackupFilename(now time.Time) string {
	return fmt.Sprintf("upcount-backup-%s.db", now.UTC().Format("2006-01-02"))
}

// Backup copies the live database file to destPath and returns destPath. The
// destination is chosen by the caller (the shell's save dialog).
func (s *Service) Backup(ctx context.Context, destPath string) (string, error) {
	livePath := s.cfg.DatabasePath()

	if _, err := os.Stat(livePath); os.IsNotExist(err) {
		return "", storage.NotFound("backup_database")
	} else if err != nil {
		return "", storage.IOErr("backup_database", err)
	}

	if err := copyFile(ctx, livePath, destPath); err != nil {
		return "", storage.IOErr("backup_database", err)
	}

	s.log.Info("database backup written",
		zap.String("source", livePath),
		zap.String("destination", destPath),
	)
	return destPath, nil
}

// Restore replaces the live database file with srcPath. The previous live file
// is kept aside as <live>.backup until the copy succeeds; on a failed copy the
// aside file is restored best effort.
func (s *Service) Restore(ctx context.Context, srcPath string) (string, error) {
	livePath := s.cfg.DatabasePath()

	if _, err := os.Stat(srcPath); err != nil {
		if os.IsNotExist(err) {
			return "", storage.NotFound("restore_database")
		}
		return "", storage.IOErr("restore_database", err)
	}

	asidePath := livePath + ".backup"
	haveAside := false
	if _, err := os.Stat(livePath); err == nil {
		if err := copyFile(ctx, livePath, asidePath); err != nil {
			return "", storage.IOErr("restore_database", err)
		}
		haveAside = true
	}

	if err := copyFile(ctx, srcPath, livePath); err != nil {
		if haveAside {
			if rollbackErr := copyFile(context.Background(), asidePath, livePath); rollbackErr != nil {
				s.log.Error("failed to roll back live database after restore error",
					zap.String("aside", asidePath),
					zap.Error(rollbackErr),
				)
			}
		}
		return "", storage.IOErr("restore_database", err)
	}

	if haveAside {
		if err := os.Remove(asidePath); err != nil {
			s.log.Warn("failed to remove aside backup", zap.String("path", asidePath), zap.Error(err))
		}
	}

	s.log.Info("database restored",
		zap.String("source", srcPath),
		zap.String("destination", livePath),
	)
	return fmt.Sprintf("Database restored successfully from %s. Restart the application to load the restored data.", srcPath), nil
}

func copyFile(ctx context.Context, src, dst string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	out, err := os.Create(dst)
	if err != nil {
		return err
	}

	if _, err := io.Copy(out, in); err != nil {
		out.Close()
		return err
	}
	if err := out.Sync(); err != nil {
		out.Close()
		return err
	}
	return out.Close()
}
