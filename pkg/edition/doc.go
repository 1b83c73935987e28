// Package edition assembles the monthly newsletter edition.
//
// An [Edition] is built by a [Builder] from independent sources:
//
//   - [MostRead]: the month's top pageviews, deny-list filtered and
//     thumbnail-enriched; run twice, once for the archive year
//   - [PickQuestion]: one trivia item from the question bank
//   - [NewThankYous]: the static thank-you ledger
//   - [Blog]: entries of the Diff blog's RSS or Atom feed
//   - [NewSocials]: curated social-media highlights
//   - [PictureOfTheDay]: the month's featured Commons images
//
// Every source may fail on its own. The Builder isolates each one, so a
// failure yields that section's empty value and never an error from
// [Builder.Build].
//
// Thumbnails for pages and questions are looked up in batches of 50 by a
// [ThumbnailResolver].
package edition
