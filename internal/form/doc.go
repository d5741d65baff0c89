// Package form implements the multi-step application ("tasklist") engine.
//
// An application is modelled as sections of tasks, and tasks as ordered
// pages. Each page owns a set of answer fields, validates them, and decides
// its own previous/next page from the answers it was constructed with.
// Saved answers live in a nested task -> page -> body map; any change to a
// page outside the review task removes the stored review so the user has to
// check their answers again.
package form
