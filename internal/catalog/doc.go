// Package catalog holds the static content tables behind the mini-games:
// illustration prompts, shop stock, science cabinet items, the restaurant
// menu and its customers, cooking recipes, spelling words, and UI sound
// effects. The tables are immutable; everything downstream (sticker
// aggregation, asset inventory) is derived from them.
package catalog
