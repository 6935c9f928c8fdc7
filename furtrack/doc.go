// Package furtrack provides a client for the FurTrack web API.
//
// FurTrack does not publish API documentation; the endpoints wrapped here
// are the ones the site itself calls. All operations are plain GET requests
// returning JSON. An API key is optional: when one is configured the client
// sends it as a bearer token on every request.
//
// # Usage
//
//	client, err := furtrack.NewClient(logger)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	// Posts for a tag, first page
//	posts, err := client.GetPostsByTag(ctx, "1:myriad", 0)
//
//	// Direct thumbnail URL for a post
//	url, err := client.GetThumbnail(ctx, 612345)
//
// The client is safe for concurrent use. SetAPIKey and SetHeaders may be
// called at any time; every request works from a snapshot of the
// configuration taken when the call starts, so requests already being built
// never observe a half-applied update.
package furtrack
