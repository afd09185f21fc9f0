package render

import "github.com/mars-mission/mars/internal/media"

const defaultWidthCacheSize = 256

type widthKey struct {
	face media.Face
	size float64
	text string
}

// widthCache memoises measured text widths with least-recently-used
// eviction. Not safe for concurrent use; Fonts guards it.
type widthCache struct {
	widths  map[widthKey]float64
	order   []widthKey // oldest first
	maxSize int
}

func newWidthCache(maxSize int) *widthCache {
	return &widthCache{
		widths:  make(map[widthKey]float64),
		order:   make([]widthKey, 0, maxSize),
		maxSize: maxSize,
	}
}

func (c *widthCache) get(k widthKey) (float64, bool) {
	w, ok := c.widths[k]
	if ok {
		c.touch(k)
	}
	return w, ok
}

func (c *widthCache) set(k widthKey, w float64) {
	if _, ok := c.widths[k]; ok {
		c.widths[k] = w
		c.touch(k)
		return
	}
	if len(c.order) >= c.maxSize {
		c.evictOldest()
	}
	c.widths[k] = w
	c.order = append(c.order, k)
}

func (c *widthCache) len() int { return len(c.order) }

func (c *widthCache) touch(k widthKey) {
	for i, o := range c.order {
		if o == k {
			c.order = append(c.order[:i], c.order[i+1:]...)
			c.order = append(c.order, k)
			return
		}
	}
}

func (c *widthCache) evictOldest() {
	if len(c.order) == 0 {
		return
	}
	delete(c.widths, c.order[0])
	c.order = c.order[1:]
}
