// Package documents loads the portfolio sections (bio, projects, goals and the
// professional profile export) and prepares their text for retrieval.
//
// Files are read exactly once. A file that cannot be read is replaced by the
// placeholder "<path> not found." so that a missing section degrades answers
// instead of failing startup.
package documents
