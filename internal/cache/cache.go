// Package cache holds rendered previews so hover re-entry inside the
// debounce window does not re-read and re-render the note.
package cache

import (
	"container/list"
	"time"
)

type PreviewCache struct {
	size      int
	evictList *list.List
	items     map[string]*list.Element
}

type entry struct {
	path     string
	modTime  time.Time
	rendered string
}

func NewPreviewCache(size int) *PreviewCache {
	return &PreviewCache{
		size:      size,
		evictList: list.New(),
		items:     make(map[string]*list.Element),
	}
}

// Get returns the cached rendering for path, missing when the file has been
// modified since the entry was stored.
func (c *PreviewCache) Get(path string, modTime time.Time) (string, bool) {
	ele, hit := c.items[path]
	if !hit {
		return "", false
	}

	ent := ele.Value.(*entry)
	if !ent.modTime.Equal(modTime) {
		c.removeElement(ele)
		return "", false
	}

	c.evictList.MoveToFront(ele)
	return ent.rendered, true
}

func (c *PreviewCache) Put(path string, modTime time.Time, rendered string) {
	if ele, hit := c.items[path]; hit {
		c.evictList.MoveToFront(ele)
		ent := ele.Value.(*entry)
		ent.modTime = modTime
		ent.rendered = rendered
		return
	}

	ele := c.evictList.PushFront(&entry{path: path, modTime: modTime, rendered: rendered})
	c.items[path] = ele

	if c.evictList.Len() > c.size {
		c.removeOldest()
	}
}

func (c *PreviewCache) removeOldest() {
	if ele := c.evictList.Back(); ele != nil {
		c.removeElement(ele)
	}
}

func (c *PreviewCache) removeElement(e *list.Element) {
	c.evictList.Remove(e)
	delete(c.items, e.Value.(*entry).path)
}
