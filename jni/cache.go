package jni

import (
	lru "github.com/hashicorp/golang-lru"
	cmap "github.com/orcaman/concurrent-map"
	"go.uber.org/zap"

	"omibyte.io/gojni/jvm"
	"omibyte.io/gojni/sig"
)

// ClassCache pins resolved classes with global references so repeated
// lookups skip FindClass. Entries are never invalidated; Purge releases
// everything.
type ClassCache struct {
	acc     *Accessor
	classes cmap.ConcurrentMap
	members *lru.Cache
}

func newClassCache(acc *Accessor, memberCacheSize int) *ClassCache {
	c := &ClassCache{
		acc:     acc,
		classes: cmap.New(),
	}
	if memberCacheSize > 0 {
		// lru.New only fails for non-positive sizes
		c.members, _ = lru.New(memberCacheSize)
	}
	return c
}

// Class returns the cached global reference of the named class, resolving
// and pinning it on first use. The returned handle stays valid until Purge.
func (c *ClassCache) Class(env *Env, name string) (jvm.Class, error) {
	key := sig.BinaryName(name)
	for {
		if v, ok := c.classes.Get(key); ok {
			return v.(*GlobalRef).Ref(), nil
		}

		local, err := env.FindClass(key)
		if err != nil {
			return 0, err
		}
		g, err := env.NewGlobal(local)
		env.DeleteLocal(local)
		if err != nil {
			return 0, err
		}

		if c.classes.SetIfAbsent(key, g) {
			c.acc.log.Debug("class cached", zap.String("category", "class"), zap.String("class", key))
			return g.Ref(), nil
		}

		// Another thread cached the class first
		g.ReleaseWith(env)
	}
}

// Len returns the number of cached classes.
func (c *ClassCache) Len() int {
	return c.classes.Count()
}

// Purge releases every cached class and forgets every memoized member id.
func (c *ClassCache) Purge() {
	if c.members != nil {
		c.members.Purge()
	}
	for _, key := range c.classes.Keys() {
		if v, ok := c.classes.Pop(key); ok {
			v.(*GlobalRef).Release()
		}
	}
}

// memberKey formats a member as class.name(desc), with a prefix for the
// member kind.
func memberKey(kind, class, name, desc string) string {
	return kind + ":" + class + "." + name + desc
}

// MethodID resolves an instance method of a cached class. Ids are memoized;
// they stay valid because the class is pinned.
func (c *ClassCache) MethodID(env *Env, className, name, desc string) (jvm.MethodID, error) {
	return member(c, env, "m", className, name, desc, env.ClassMethodID)
}

// StaticMethodID resolves a static method of a cached class.
func (c *ClassCache) StaticMethodID(env *Env, className, name, desc string) (jvm.MethodID, error) {
	return member(c, env, "s", className, name, desc, env.StaticMethodID)
}

// FieldID resolves an instance field of a cached class.
func (c *ClassCache) FieldID(env *Env, className, name string, typ sig.Type) (jvm.FieldID, error) {
	return member(c, env, "f", className, name, string(typ), func(cls jvm.Class, name, desc string) (jvm.FieldID, error) {
		return env.FieldID(cls, name, sig.Type(desc))
	})
}

// StaticFieldID resolves a static field of a cached class.
func (c *ClassCache) StaticFieldID(env *Env, className, name string, typ sig.Type) (jvm.FieldID, error) {
	return member(c, env, "g", className, name, string(typ), func(cls jvm.Class, name, desc string) (jvm.FieldID, error) {
		return env.StaticFieldID(cls, name, sig.Type(desc))
	})
}

func member[ID jvm.MethodID | jvm.FieldID](c *ClassCache, env *Env, kind, className, name, desc string, resolve func(jvm.Class, string, string) (ID, error)) (ID, error) {
	binary := sig.BinaryName(className)
	key := memberKey(kind, binary, name, desc)
	if c.members != nil {
		if v, ok := c.members.Get(key); ok {
			return v.(ID), nil
		}
	}

	cls, err := c.Class(env, binary)
	if err != nil {
		return 0, err
	}
	id, err := resolve(cls, name, desc)
	if err != nil {
		return 0, err
	}
	if c.members != nil {
		c.members.Add(key, id)
	}
	return id, nil
}
