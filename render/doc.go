// Package render converts a recognized table structure into output formats.
//
// Three renderers are provided:
//
//   - HTML produces a <table> element with rowspan/colspan attributes, so
//     merged cells survive the conversion losslessly.
//   - Markdown produces a pipe table with the first grid row as header.
//   - CSV produces comma-separated rows with standard quote escaping.
//
// Markdown and CSV have no concept of spanning cells, so a merged cell's
// content is repeated at every grid position it covers.
package render
