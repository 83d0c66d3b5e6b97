package utils

import (
	"os"
	"path/filepath"

	"backend-master/config"
	"backend-master/controllers/idgen"

	"github.com/gofiber/fiber/v2"
)

// SaveUpload menyimpan satu file multipart ke UPLOAD_DIR/subdir dengan nama
// snowflake supaya tidak pernah tabrakan. Mengembalikan path relatif yang
// disimpan di kolom lampiran; string kosong kalau field tidak dikirim.
func SaveUpload(ctx *fiber.Ctx, field, subdir string) (string, error) {
	fileHeader, err := ctx.FormFile(field)
	if err != nil || fileHeader == nil {
		return "", nil
	}

	dir := filepath.Join(config.UploadDir, subdir)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", err
	}

	name := idgen.GenerateString() + filepath.Ext(fileHeader.Filename)
	if err := ctx.SaveFile(fileHeader, filepath.Join(dir, name)); err != nil {
		return "", err
	}

	return filepath.ToSlash(filepath.Join(subdir, name)), nil
}

// RemoveUpload menghapus file lampiran lama; path kosong diabaikan
func RemoveUpload(path string) {
	if path == "" {
		return
	}
	os.Remove(filepath.Join(config.UploadDir, path))
}
