// Package cache provides the bounded memo used by font backends to keep
// decoded glyph outlines between pack calls.
//
//	c := cache.New[fontsrc.GlyphID, fontsrc.Outline](256)
//	o := c.GetOrCreate(gid, func() fontsrc.Outline { return decode(gid) })
//
// A Cache is safe for concurrent use and must not be copied after creation.
package cache
