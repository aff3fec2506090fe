package collection

import (
	_ "embed"
	"sync"

	"tvibe/pkg/logging"
)

//go:generate go run ../.. build ../../colorschemes -o colorschemes.bin

//go:embed colorschemes.bin
var embedded []byte

var loadEmbedded = sync.OnceValues(func() (*Collection, error) {
	c, err := New(embedded)
	if err != nil {
		logging.Error("Collection", err, "embedded collection is unreadable")
		return nil, err
	}
	logging.Debug("Collection", "embedded collection holds %d themes (%d bytes)", c.Len(), len(embedded))
	return c, nil
})

// Embedded returns the collection compiled into the binary. It is parsed on
// first use.
func Embedded() (*Collection, error) {
	return loadEmbedded()
}
