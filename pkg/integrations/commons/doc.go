// Package commons provides an HTTP client for the Wikimedia Commons Action
// API.
//
// Two queries are exposed: [Client.TemplateImages] lists the files a page
// (typically a Template:Potd/YYYY-MM month page) embeds, and
// [Client.ImageInfo] resolves a batch of file titles to thumbnail URLs.
package commons
