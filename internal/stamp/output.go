package stamp

import (
	"path/filepath"
	"strings"
)

const outputSuffix = "_watermark"

// OutputPath derives the destination of a watermarked copy:
// <parent>/<parent name>_watermark/<base name>_watermark.jpg.
// A bare file name or a file directly under the root has an empty parent
// name, so its directory is just "_watermark".
func OutputPath(sourcePath string) string {
	parentDir := filepath.Dir(sourcePath)

	parentName := ""
	if strings.ContainsRune(sourcePath, filepath.Separator) {
		parentName = filepath.Base(parentDir)
		if parentName == string(filepath.Separator) {
			parentName = ""
		}
	}

	name := filepath.Base(sourcePath)
	name = strings.TrimSuffix(name, filepath.Ext(name))

	return filepath.Join(parentDir, parentName+outputSuffix, name+outputSuffix+".jpg")
}
