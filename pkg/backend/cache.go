package backend

import (
	lru "github.com/hashicorp/golang-lru/v2"
	"github.com/radiocarbon-hq/radiocarbon/pkg/proto"
)

// cache memoizes member-id lookups for hot read paths such as message
// author resolution. Any directory mutation invalidates it.
type cache struct {
	b       *Backend
	members *lru.Cache[string, proto.TeamMember]
}

func newCache(b *Backend, size int) *cache {
	if size <= 0 {
		size = 1
	}
	c := &cache{b: b}
	cache, _ := lru.New[string, proto.TeamMember](size)
	c.members = cache
	return c
}

func (c *cache) Get(id string) (proto.TeamMember, bool) {
	return c.members.Get(id)
}

func (c *cache) Set(id string, m proto.TeamMember) {
	c.members.Add(id, m)
}

func (c *cache) Purge() {
	c.members.Purge()
}
