package spotify_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/okian/soundproof/internal/adapters/spotify"
	"github.com/okian/soundproof/internal/domain/claim"
	. "github.com/smartystreets/goconvey/convey"
)

func TestCanClaimTopTracks(t *testing.T) {
	Convey("Given a fake Spotify API", t, func() {
		var gotPath, gotQuery, gotAuth string
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			gotPath = r.URL.Path
			gotQuery = r.URL.RawQuery
			gotAuth = r.Header.Get("Authorization")
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(`{"items":[{"name":"Bohemian Rhapsody"},{"name":"Yellow"}]}`))
		}))
		defer srv.Close()

		client := spotify.NewClient(spotify.WithBaseURL(srv.URL))
		ctx := context.Background()

		Convey("When the claimed track is in the list", func() {
			ok, err := client.CanClaimTopTracks(ctx, "tok123", "Yellow", claim.MediumTerm, 10)

			Convey("Then the verdict is true", func() {
				So(err, ShouldBeNil)
				So(ok, ShouldBeTrue)
			})

			Convey("And the request carries the token and the range parameters", func() {
				So(err, ShouldBeNil)
				So(gotPath, ShouldEqual, "/v1/me/top/tracks")
				So(gotQuery, ShouldContainSubstring, "time_range=medium_term")
				So(gotQuery, ShouldContainSubstring, "limit=10")
				So(gotAuth, ShouldEqual, "Bearer tok123")
			})
		})

		Convey("When the claimed track is absent", func() {
			ok, err := client.CanClaimTopTracks(ctx, "tok123", "Clocks", claim.ShortTerm, 5)
			So(err, ShouldBeNil)
			So(ok, ShouldBeFalse)
		})

		Convey("When the match differs only by case", func() {
			Convey("Then the comparison stays exact", func() {
				ok, err := client.CanClaimTopTracks(ctx, "tok123", "yellow", claim.ShortTerm, 5)
				So(err, ShouldBeNil)
				So(ok, ShouldBeFalse)
			})
		})
	})
}

func TestCanClaimTopArtist(t *testing.T) {
	Convey("Given a fake Spotify API", t, func() {
		var gotPath string
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			gotPath = r.URL.Path
			_, _ = w.Write([]byte(`{"items":[{"name":"Queen"}]}`))
		}))
		defer srv.Close()

		client := spotify.NewClient(spotify.WithBaseURL(srv.URL))

		Convey("When the claimed artist is in the list", func() {
			ok, err := client.CanClaimTopArtist(context.Background(), "tok", "Queen", claim.LongTerm, 3)

			So(err, ShouldBeNil)
			So(ok, ShouldBeTrue)
			So(gotPath, ShouldEqual, "/v1/me/top/artists")
		})
	})
}

func TestCanClaimRecentlyPlayedTrack(t *testing.T) {
	Convey("Given a fake Spotify API", t, func() {
		var gotQuery string
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			gotQuery = r.URL.RawQuery
			_, _ = w.Write([]byte(`{"items":[{"track":{"name":"Yellow"}},{"track":{"name":"Clocks"}}]}`))
		}))
		defer srv.Close()

		client := spotify.NewClient(spotify.WithBaseURL(srv.URL))

		Convey("When the claimed track was recently played", func() {
			ok, err := client.CanClaimRecentlyPlayedTrack(context.Background(), "tok", "Clocks", 1689633061, 20)

			So(err, ShouldBeNil)
			So(ok, ShouldBeTrue)
			So(gotQuery, ShouldContainSubstring, "after=1689633061")
			So(gotQuery, ShouldContainSubstring, "limit=20")
		})

		Convey("When the claimed track is not in the history", func() {
			ok, err := client.CanClaimRecentlyPlayedTrack(context.Background(), "tok", "Paranoid", 0, 20)
			So(err, ShouldBeNil)
			So(ok, ShouldBeFalse)
		})
	})
}

func TestClientErrors(t *testing.T) {
	Convey("Given a fake Spotify API that rejects requests", t, func() {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusUnauthorized)
			_, _ = w.Write([]byte(`{"error":{"status":401,"message":"The access token expired"}}`))
		}))
		defer srv.Close()

		client := spotify.NewClient(spotify.WithBaseURL(srv.URL))

		Convey("When evaluating any claim", func() {
			_, err := client.CanClaimTopTracks(context.Background(), "stale", "Yellow", claim.ShortTerm, 5)

			Convey("Then the API's message surfaces in the error", func() {
				So(err, ShouldNotBeNil)
				So(err.Error(), ShouldContainSubstring, "401")
				So(err.Error(), ShouldContainSubstring, "The access token expired")
			})
		})
	})

	Convey("Given a fake Spotify API with a bodyless failure", t, func() {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusBadGateway)
		}))
		defer srv.Close()

		client := spotify.NewClient(spotify.WithBaseURL(srv.URL))

		Convey("When evaluating any claim", func() {
			_, err := client.CanClaimTopArtist(context.Background(), "tok", "Queen", claim.ShortTerm, 5)
			So(err, ShouldNotBeNil)
			So(err.Error(), ShouldContainSubstring, "502")
		})
	})
}
