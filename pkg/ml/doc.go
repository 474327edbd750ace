// Package ml provides Go bindings to the native mlrt inference runtime via
// purego. It exposes three model wrappers: Embedder (sentence embeddings),
// CrossEncoder (query-document relevance scoring) and Tagger (token
// classification / named-entity recognition).
//
// Each wrapper owns one loaded model. Construction loads the model weights
// and fails fast if the runtime cannot initialize it. Inference calls are
// serialized per wrapper with an internal mutex because the runtime does not
// guarantee concurrent calls on a single model handle are safe.
package ml
