package sdlcanvas

import "github.com/veandco/go-sdl2/sdl"

// defaultTextCacheSize covers a full pool of rows on a tall screen while the
// list scrolls through it.
const defaultTextCacheSize = 64

// textCache keeps rendered row labels, evicting the least recently used.
type textCache struct {
	textures map[string]*sdl.Texture
	order    []string // least recently used first
	maxSize  int
}

func newTextCache(maxSize int) *textCache {
	return &textCache{
		textures: make(map[string]*sdl.Texture, maxSize),
		order:    make([]string, 0, maxSize),
		maxSize:  maxSize,
	}
}

func (c *textCache) get(text string) *sdl.Texture {
	texture, ok := c.textures[text]
	if ok {
		c.touch(text)
	}
	return texture
}

func (c *textCache) put(text string, texture *sdl.Texture) {
	if old, ok := c.textures[text]; ok {
		if old != texture {
			old.Destroy()
		}
		c.textures[text] = texture
		c.touch(text)
		return
	}

	if len(c.order) >= c.maxSize {
		c.evict()
	}

	c.textures[text] = texture
	c.order = append(c.order, text)
}

func (c *textCache) touch(text string) {
	for i, k := range c.order {
		if k == text {
			copy(c.order[i:], c.order[i+1:])
			c.order[len(c.order)-1] = text
			return
		}
	}
}

func (c *textCache) evict() {
	if len(c.order) == 0 {
		return
	}

	oldest := c.order[0]
	c.order = c.order[1:]

	if texture, ok := c.textures[oldest]; ok {
		texture.Destroy()
		delete(c.textures, oldest)
	}
}

func (c *textCache) destroy() {
	for _, texture := range c.textures {
		texture.Destroy()
	}
	clear(c.textures)
	c.order = c.order[:0]
}
