// Package sticker builds the canonical pool of collectible stickers by
// merging five content catalogs. Identity is the sticker ID; when two
// catalogs claim the same ID the first-seen entry wins.
package sticker
