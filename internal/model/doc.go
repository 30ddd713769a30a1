package model

// Package model defines the transient state owned by the loader screen: the
// interaction state machine and the download progress value rendered by the
// ring. Both are plain values so they can be handed across goroutines safely.
