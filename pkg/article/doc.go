// Package article fetches rendered Wikipedia articles and adapts their
// markup for embedding in the reader.
//
// [Transform] is a pure function from Parsoid HTML to the inner markup of
// the document body. It applies a fixed sequence of rewrites:
//
//  1. drop <base>
//  2. drop external stylesheet links
//  3. move head <style> elements to the start of the body, in order
//  4. rewrite ./Title links to /wiki/Title, or to an absolute URL opened in
//     a new tab for reserved namespaces (Special:, File:, Category: ...)
//  5. give protocol-relative image sources an https scheme
//  6. add mw-heading classes to every heading
//  7. for the compact skin, fold each top-level section with an <h2> into a
//     <details> accordion
//
// [Service] validates the title, fetches the markup through a [Fetcher] and
// applies [Transform]. Upstream failures surface as *errors.FetchError.
package article
