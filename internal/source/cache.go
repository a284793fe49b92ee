package source

import (
	"bytes"
	"encoding/hex"
	"fmt"
	"image"
	_ "image/gif"  // Register GIF format decoder
	_ "image/jpeg" // Register JPEG format decoder
	_ "image/png"  // Register PNG format decoder
	"os"
	"sync"

	"github.com/cespare/xxhash/v2"

	_ "golang.org/x/image/bmp"  // Register BMP format decoder
	_ "golang.org/x/image/tiff" // Register TIFF format decoder
	_ "golang.org/x/image/webp" // Register WebP format decoder
)

// Cache provides thread-safe caching of decoded images to avoid redundant
// disk reads and decodes.
//
// Images loaded from disk are keyed by the exact path string; images decoded
// from in-memory bytes are keyed by the xxHash64 of the bytes, so repeated
// LoadBytes calls with identical content decode only once.
//
// Cached images remain in memory until explicitly removed via Evict or
// Clear. Long-running callers processing many images should clear
// periodically to bound memory.
type Cache struct {
	mu     sync.RWMutex
	images map[string]image.Image
}

// NewCache creates an empty image cache ready for concurrent use.
func NewCache() *Cache {
	return &Cache{
		images: make(map[string]image.Image),
	}
}

// Load retrieves an image from the cache or decodes it from disk.
//
// Different path strings for the same file (relative vs absolute) produce
// separate cache entries. Returns an error if the file cannot be opened or
// is not in a registered format.
func (c *Cache) Load(path string) (image.Image, error) {
	if img, ok := c.get(path); ok {
		return img, nil
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open image: %w", err)
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decode image %s: %w", path, err)
	}

	c.put(path, img)
	return img, nil
}

// LoadBytes decodes an image from an in-memory buffer, caching the result
// under the content hash of the bytes.
func (c *Cache) LoadBytes(data []byte) (image.Image, error) {
	key := contentKey(data)
	if img, ok := c.get(key); ok {
		return img, nil
	}

	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("decode image bytes: %w", err)
	}

	c.put(key, img)
	return img, nil
}

// Evict removes one cached image by its path (or content-hash key).
// Unknown keys are ignored.
func (c *Cache) Evict(key string) {
	c.mu.Lock()
	delete(c.images, key)
	c.mu.Unlock()
}

// Clear drops every cached image, freeing the associated memory.
func (c *Cache) Clear() {
	c.mu.Lock()
	c.images = make(map[string]image.Image)
	c.mu.Unlock()
}

func (c *Cache) get(key string) (image.Image, bool) {
	c.mu.RLock()
	img, ok := c.images[key]
	c.mu.RUnlock()
	return img, ok
}

func (c *Cache) put(key string, img image.Image) {
	c.mu.Lock()
	c.images[key] = img
	c.mu.Unlock()
}

// contentKey derives a cache key from raw bytes: "xx:" plus the xxHash64 of
// the content in hex. 64 bits is collision-safe for practical image counts.
func contentKey(data []byte) string {
	sum := xxhash.Sum64(data)
	var b [8]byte
	for i := 0; i < 8; i++ {
		b[i] = byte(sum >> (56 - 8*i))
	}
	return "xx:" + hex.EncodeToString(b[:])
}
