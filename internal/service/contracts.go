package service

import "context"

// Dictionary looks up a definition for a word. Implementations call
// external services; an empty string means no definition was found.
type Dictionary interface {
	Lookup(ctx context.Context, word string) (string, error)
}

// Translator translates text into the target language.
type Translator interface {
	Translate(ctx context.Context, text, targetLang string) (string, error)
}
