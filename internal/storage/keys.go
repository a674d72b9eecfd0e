package storage

import (
	"path"
	"strings"

	"github.com/google/uuid"
)

// BankLogoFolder is the key prefix for loan bank logos.
const BankLogoFolder = "bank-logos"

// NewObjectKey returns "<folder>/<random hex><ext>" keeping the extension of filename.
func NewObjectKey(folder, filename string) string {
	id := strings.ReplaceAll(uuid.NewString(), "-", "")
	return folder + "/" + id + strings.ToLower(path.Ext(filename))
}
