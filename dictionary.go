package prosecheck

import (
	"github.com/RoaringBitmap/roaring"
)

// Dictionary is an immutable lookup from a word to its metadata. It is safe
// to share across goroutines: nothing here ever mutates after construction.
type Dictionary interface {
	Contains(word []rune) bool
	ContainsStr(word string) bool
	Lookup(word []rune) (WordMetadata, bool)
	LookupStr(word string) (WordMetadata, bool)
	// WordCount reports how many distinct words the dictionary knows about.
	WordCount() int
}

// ═══════════════════════════════════════════════════════════════════════════════
// FULLDICTIONARY: PROPERTY SETS BACKED BY ROARING BITMAPS
// ═══════════════════════════════════════════════════════════════════════════════
// Rather than a map[string]WordMetadata, each word is assigned a sequential
// uint32 ID on insertion, and every WordMetadata boolean becomes its own
// *roaring.Bitmap of word IDs:
//
//	nounSet:  {3, 19, 42, ...}   (every word ID known to be a noun)
//	verbSet:  {3, 7, 19, ...}    (every word ID known to be a verb)
//
// Lookup reconstructs a WordMetadata by testing bitmap membership instead of
// reading struct fields. Every lookup - including spell-check candidate
// ranking's commonness check and MergedDictionary's layering - goes through
// that per-word reconstruction; no code path reads a flag bitmap as a
// whole.
// ═══════════════════════════════════════════════════════════════════════════════

// FullDictionary is a standalone, flat word list.
type FullDictionary struct {
	idsByWord map[string]uint32
	wordByID  []string

	nounSet        *roaring.Bitmap
	verbSet        *roaring.Bitmap
	adjectiveSet   *roaring.Bitmap
	adverbSet      *roaring.Bitmap
	pronounSet     *roaring.Bitmap
	conjunctionSet *roaring.Bitmap
	determinerSet  *roaring.Bitmap
	prepositionSet *roaring.Bitmap
	linkingVerbSet *roaring.Bitmap
	commonSet      *roaring.Bitmap
}

// NewFullDictionary returns an empty dictionary ready for AppendWord calls.
func NewFullDictionary() *FullDictionary {
	return &FullDictionary{
		idsByWord:      make(map[string]uint32),
		wordByID:       make([]string, 0),
		nounSet:        roaring.NewBitmap(),
		verbSet:        roaring.NewBitmap(),
		adjectiveSet:   roaring.NewBitmap(),
		adverbSet:      roaring.NewBitmap(),
		pronounSet:     roaring.NewBitmap(),
		conjunctionSet: roaring.NewBitmap(),
		determinerSet:  roaring.NewBitmap(),
		prepositionSet: roaring.NewBitmap(),
		linkingVerbSet: roaring.NewBitmap(),
		commonSet:      roaring.NewBitmap(),
	}
}

// Curated builds the built-in English word list (curated_words.go). It is
// cheap enough to call per-process; callers that construct many documents
// should build it once and share the result.
func Curated() *FullDictionary {
	dict := NewFullDictionary()
	for _, entry := range curatedWords {
		dict.AppendWord(entry.word, entry.meta)
	}
	return dict
}

func normalizeWord(word string) string {
	return foldCase(word)
}

// AppendWord inserts word with the given metadata, assigning it a fresh ID
// the first time it is seen. Appending an already-known word merges the new
// metadata's positive flags into the existing bitmaps rather than
// overwriting anything - two AppendWord calls for the same word never
// "unlearn" a flag.
func (d *FullDictionary) AppendWord(word string, meta WordMetadata) {
	key := normalizeWord(word)

	id, ok := d.idsByWord[key]
	if !ok {
		id = uint32(len(d.wordByID))
		d.idsByWord[key] = id
		d.wordByID = append(d.wordByID, key)
	}

	setIf := func(set *roaring.Bitmap, flag *bool) {
		if isTrue(flag) {
			set.Add(id)
		}
	}
	setIf(d.nounSet, meta.IsNoun)
	setIf(d.verbSet, meta.IsVerb)
	setIf(d.adjectiveSet, meta.IsAdjective)
	setIf(d.adverbSet, meta.IsAdverb)
	setIf(d.pronounSet, meta.IsPronoun)
	setIf(d.conjunctionSet, meta.IsConjunction)
	setIf(d.determinerSet, meta.IsDeterminer)
	setIf(d.prepositionSet, meta.IsPreposition)
	setIf(d.linkingVerbSet, meta.IsLinkingVerb)
	setIf(d.commonSet, meta.IsCommon)
}

func (d *FullDictionary) metadataForID(id uint32) WordMetadata {
	flag := func(set *roaring.Bitmap) *bool {
		if set.Contains(id) {
			return boolPtr(true)
		}
		return nil
	}
	return WordMetadata{
		IsNoun:        flag(d.nounSet),
		IsVerb:        flag(d.verbSet),
		IsAdjective:   flag(d.adjectiveSet),
		IsAdverb:      flag(d.adverbSet),
		IsPronoun:     flag(d.pronounSet),
		IsConjunction: flag(d.conjunctionSet),
		IsDeterminer:  flag(d.determinerSet),
		IsPreposition: flag(d.prepositionSet),
		IsLinkingVerb: flag(d.linkingVerbSet),
		IsCommon:      flag(d.commonSet),
	}
}

func (d *FullDictionary) ContainsStr(word string) bool {
	_, ok := d.idsByWord[normalizeWord(word)]
	return ok
}

func (d *FullDictionary) Contains(word []rune) bool {
	return d.ContainsStr(string(word))
}

func (d *FullDictionary) LookupStr(word string) (WordMetadata, bool) {
	id, ok := d.idsByWord[normalizeWord(word)]
	if !ok {
		return WordMetadata{}, false
	}
	return d.metadataForID(id), true
}

func (d *FullDictionary) Lookup(word []rune) (WordMetadata, bool) {
	return d.LookupStr(string(word))
}

func (d *FullDictionary) WordCount() int {
	return len(d.wordByID)
}

// Words returns every known word in ID order. Used by spell-check candidate
// search, which needs to walk the full vocabulary.
func (d *FullDictionary) Words() []string {
	out := make([]string, len(d.wordByID))
	copy(out, d.wordByID)
	return out
}

// ═══════════════════════════════════════════════════════════════════════════════
// MERGEDDICTIONARY: A CURATED BASE PLUS USER OVERLAYS
// ═══════════════════════════════════════════════════════════════════════════════
// Layers are queried in the order they were added, and every layer that
// contains the word contributes its metadata, OR-merged across layers, so
// no layer overrides another.
// Composing a new overlay never mutates an existing MergedDictionary - it
// returns a new value whose layer list is the old one plus one entry, so two
// goroutines can hold different overlay views of the same base concurrently.
// ═══════════════════════════════════════════════════════════════════════════════

// MergedDictionary is an ordered, immutable stack of dictionary layers.
type MergedDictionary struct {
	layers []Dictionary
}

// NewMergedDictionary builds a layered dictionary whose only layer is base.
func NewMergedDictionary(base Dictionary) *MergedDictionary {
	return &MergedDictionary{layers: []Dictionary{base}}
}

// WithOverlay returns a new MergedDictionary with overlay appended on top of
// the receiver's layers. The receiver is left untouched. If overlay is a
// *FullDictionary, any word it shares with an existing layer is checked for
// contradictory metadata (a flag the existing layers agree is false, which
// the overlay asserts true) and logged - Merge will still OR the flags
// together silently, but a caller building an overlay from an untrusted
// source wants to know its data disagreed with the base dictionary.
func (d *MergedDictionary) WithOverlay(overlay Dictionary) *MergedDictionary {
	if full, ok := overlay.(*FullDictionary); ok {
		for _, word := range full.Words() {
			newMeta, _ := full.LookupStr(word)
			if oldMeta, found := d.LookupStr(word); found && contradicts(oldMeta, newMeta) {
				logDictionaryOverlayConflict(word)
			}
		}
	}
	layers := make([]Dictionary, len(d.layers)+1)
	copy(layers, d.layers)
	layers[len(layers)-1] = overlay
	return &MergedDictionary{layers: layers}
}

// contradicts reports whether b asserts a flag true that a already settled
// as false by asserting the opposite flag in the same mutually-exclusive
// part-of-speech slot a word only ever occupies one of.
func contradicts(a, b WordMetadata) bool {
	pairs := [][2]*bool{
		{a.IsNoun, b.IsPronoun}, {a.IsPronoun, b.IsNoun},
		{a.IsNoun, b.IsVerb}, {a.IsVerb, b.IsNoun},
		{a.IsAdjective, b.IsAdverb}, {a.IsAdverb, b.IsAdjective},
	}
	for _, p := range pairs {
		if isTrue(p[0]) && isTrue(p[1]) {
			return true
		}
	}
	return false
}

func (d *MergedDictionary) ContainsStr(word string) bool {
	for _, layer := range d.layers {
		if layer.ContainsStr(word) {
			return true
		}
	}
	return false
}

func (d *MergedDictionary) Contains(word []rune) bool {
	return d.ContainsStr(string(word))
}

func (d *MergedDictionary) LookupStr(word string) (WordMetadata, bool) {
	var merged WordMetadata
	found := false
	for _, layer := range d.layers {
		if meta, ok := layer.LookupStr(word); ok {
			merged = merged.Merge(meta)
			found = true
		}
	}
	return merged, found
}

func (d *MergedDictionary) Lookup(word []rune) (WordMetadata, bool) {
	return d.LookupStr(string(word))
}

func (d *MergedDictionary) WordCount() int {
	seen := make(map[string]struct{})
	for _, layer := range d.layers {
		if full, ok := layer.(*FullDictionary); ok {
			for _, w := range full.Words() {
				seen[w] = struct{}{}
			}
			continue
		}
	}
	if len(seen) > 0 {
		return len(seen)
	}
	// Fall back to the widest single layer when layers aren't introspectable.
	max := 0
	for _, layer := range d.layers {
		if n := layer.WordCount(); n > max {
			max = n
		}
	}
	return max
}
