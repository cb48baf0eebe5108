// Package assets provides the bundled CSS stylesheet and HTML template
// used for Markdown to PDF conversion.
//
// Assets are embedded at compile time and loaded through the Loader
// interface, so alternative backends (filesystem, object storage) can be
// swapped in without touching callers. Asset names are validated to
// prevent path traversal.
//
// The bundled stylesheet carries the default @page rule (size and
// margins); the bundled template wraps the rendered Markdown body in an
// HTML5 document with the stylesheet inlined and MathJax wired for math
// notation.
package assets
