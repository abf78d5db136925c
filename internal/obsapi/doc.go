// Package obsapi contains helpers for talking with a build service API
// that exchanges XML documents over HTTP.
//
// There are three groups of functions:
//
// - [Get] builds the request URL from the API URL, the path segments,
// and the query, sends a GET request, and parses the response body;
//
// - [FindNodes] and [FindNode] locate direct children of a parsed
// document after asserting the tag of its root;
//
// - [WriteXMLNodeToFile] serializes a document to a file, optionally
// pretty-printing it.
//
// Documents are represented using *etree.Element values from the
// github.com/beevik/etree package.
package obsapi
