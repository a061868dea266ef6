package pagebrief

import "unicode/utf8"

// Chunk is a contiguous slice of normalized page text. Start and End are
// byte offsets into the source text; Index is 0-based and order-preserving.
type Chunk struct {
	Index int
	Start int
	End   int
	Text  string
}

// SplitChunks splits text into ordered chunks of at most maxSize bytes,
// where consecutive chunks share an overlap-byte suffix/prefix so that
// context spanning a boundary is visible to both sides.
//
// Each window prefers to break at the last whitespace inside it so words
// stay intact, falling back to a hard cut when the window contains no
// usable whitespace. The chunks are gap-free: every byte of the input is
// covered, and the final chunk ends exactly at the end of the input.
//
// Empty text produces no chunks and no error. Invalid parameters
// (maxSize <= 0 or overlap outside [0, maxSize)) return EINVALID.
func SplitChunks(text string, maxSize, overlap int) ([]Chunk, error) {
	if maxSize <= 0 {
		return nil, Errorf(EINVALID, "max chunk size must be positive, got %d", maxSize)
	}
	if overlap < 0 || overlap >= maxSize {
		return nil, Errorf(EINVALID, "overlap must be in [0, %d), got %d", maxSize, overlap)
	}
	if text == "" {
		return nil, nil
	}

	var chunks []Chunk
	start := 0
	for {
		if start+maxSize >= len(text) {
			chunks = append(chunks, Chunk{
				Index: len(chunks),
				Start: start,
				End:   len(text),
				Text:  text[start:],
			})
			return chunks, nil
		}

		end := start + maxSize
		// Snap to the last whitespace in the window, but only if doing so
		// still moves the next window forward past the overlap region.
		if i := lastBreak(text, start, end); i > start+overlap {
			end = i
		} else {
			// Hard cut: never split a multi-byte rune.
			for end > start+overlap+1 && !utf8.RuneStart(text[end]) {
				end--
			}
		}

		chunks = append(chunks, Chunk{
			Index: len(chunks),
			Start: start,
			End:   end,
			Text:  text[start:end],
		})
		start = end - overlap
		// The overlap is counted in bytes, so it can land inside a
		// multi-byte rune. Snap forward to the next rune start.
		for start < end && !utf8.RuneStart(text[start]) {
			start++
		}
	}
}

// lastBreak returns the offset just after the last whitespace byte in
// text[start:end], or -1 if the window contains none. Normalized text only
// carries ASCII spaces and newlines, so a byte scan suffices.
func lastBreak(text string, start, end int) int {
	for i := end - 1; i > start; i-- {
		switch text[i] {
		case ' ', '\n', '\t':
			return i + 1
		}
	}
	return -1
}
