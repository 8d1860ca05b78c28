// Package ftpupload sube las fotos de cartas al alojamiento remoto por FTP.
// Cada operación abre su propia conexión: el volumen es bajo y el servidor
// corta sesiones inactivas.
package ftpupload

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"path"
	"path/filepath"
	"strings"
	"time"

	"github.com/jlaffaye/ftp"

	"github.com/kartoteka/kartoteka-api/internal/application/ports"
	"github.com/kartoteka/kartoteka-api/pkg/logger"
)

// Verificar en tiempo de compilación que Uploader implementa ImageUploader.
var _ ports.ImageUploader = (*Uploader)(nil)

// Uploader adaptador FTP.
type Uploader struct {
	addr     string // host:puerto
	user     string
	password string
	log      *logger.Logger
}

// NewUploader construye el adaptador.
func NewUploader(addr, user, password string, log *logger.Logger) *Uploader {
	return &Uploader{addr: addr, user: user, password: password, log: log}
}

// UploadFile sube el contenido a remotePath creando los directorios
// intermedios que falten.
func (u *Uploader) UploadFile(ctx context.Context, remotePath string, data []byte) error {
	conn, err := u.dial(ctx)
	if err != nil {
		return err
	}
	defer conn.Quit()

	if err := u.ensureDirs(conn, path.Dir(remotePath)); err != nil {
		return err
	}
	if err := conn.Stor(remotePath, bytes.NewReader(data)); err != nil {
		return fmt.Errorf("ftp: subir %s: %w", remotePath, err)
	}
	u.log.Debug().Str("path", remotePath).Int("bytes", len(data)).Msg("archivo subido")
	return nil
}

// UploadDir sube recursivamente un directorio local, respetando la estructura.
func (u *Uploader) UploadDir(ctx context.Context, localDir, remoteDir string) error {
	conn, err := u.dial(ctx)
	if err != nil {
		return err
	}
	defer conn.Quit()

	return filepath.Walk(localDir, func(localPath string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if ctx.Err() != nil {
			return ctx.Err()
		}
		rel, err := filepath.Rel(localDir, localPath)
		if err != nil {
			return err
		}
		remote := path.Join(remoteDir, filepath.ToSlash(rel))
		if info.IsDir() {
			return u.ensureDirs(conn, remote)
		}

		f, err := os.Open(localPath)
		if err != nil {
			return err
		}
		defer f.Close()
		if err := conn.Stor(remote, f); err != nil {
			return fmt.Errorf("ftp: subir %s: %w", remote, err)
		}
		u.log.Debug().Str("path", remote).Msg("archivo subido")
		return nil
	})
}

func (u *Uploader) dial(ctx context.Context) (*ftp.ServerConn, error) {
	conn, err := ftp.Dial(u.addr, ftp.DialWithContext(ctx), ftp.DialWithTimeout(15*time.Second))
	if err != nil {
		return nil, fmt.Errorf("ftp: conectar a %s: %w", u.addr, err)
	}
	if err := conn.Login(u.user, u.password); err != nil {
		conn.Quit()
		return nil, fmt.Errorf("ftp: login: %w", err)
	}
	return conn, nil
}

// ensureDirs crea la cadena de directorios; los que ya existen no son error.
func (u *Uploader) ensureDirs(conn *ftp.ServerConn, dir string) error {
	dir = strings.Trim(dir, "/")
	if dir == "" || dir == "." {
		return nil
	}
	current := ""
	for _, part := range strings.Split(dir, "/") {
		current = path.Join(current, part)
		// MakeDir falla si ya existe; se ignora y se valida con el Stor posterior
		_ = conn.MakeDir(current)
	}
	return nil
}
