package vision

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Surya-Kukkapalli/Spot-sub001/internal/formcheck/acquire"
	"github.com/Surya-Kukkapalli/Spot-sub001/internal/formcheck/pose"
)

func TestClient_OpenTrack_ReadFrames(t *testing.T) {
	frameData := []byte("frame-0-jpeg")
	served := 0
	testServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "test-api-key", r.Header.Get("X-Vision-Api-Key"))

		switch {
		case r.Method == http.MethodPost && r.URL.Path == "/tracks":
			var req map[string]string
			require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
			assert.Equal(t, "video-1", req["videoId"])
			_, _ = fmt.Fprint(w, `{"trackId":"track-1","frameRate":30}`)
		case r.Method == http.MethodPost && r.URL.Path == "/tracks/track-1/next":
			if served > 0 {
				w.WriteHeader(http.StatusNoContent)
				return
			}
			served++
			_, _ = fmt.Fprintf(w, `{"timestampMs":33,"frame":"%s"}`,
				base64.StdEncoding.EncodeToString(frameData))
		case r.Method == http.MethodDelete && r.URL.Path == "/tracks/track-1":
			w.WriteHeader(http.StatusNoContent)
		default:
			http.Error(w, "unexpected path/method", http.StatusBadRequest)
		}
	}))
	defer testServer.Close()

	client := NewClient(testServer.URL, "test-api-key", testServer.Client())

	ctx := context.Background()
	track, err := client.OpenTrack(ctx, "video-1")
	require.NoError(t, err)

	fps, ok := track.FrameRate()
	require.True(t, ok)
	assert.InDelta(t, 30.0, fps, 1e-9)

	frame, err := track.Next(ctx)
	require.NoError(t, err)
	assert.Equal(t, frameData, frame.Data)
	assert.Equal(t, 33*time.Millisecond, frame.Timestamp)

	_, err = track.Next(ctx)
	assert.ErrorIs(t, err, io.EOF)

	require.NoError(t, track.Close())
}

func TestClient_OpenTrack_NoVideoTrack(t *testing.T) {
	testServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "no video track", http.StatusNotFound)
	}))
	defer testServer.Close()

	client := NewClient(testServer.URL, "", testServer.Client())
	_, err := client.OpenTrack(context.Background(), "audio-only")
	assert.ErrorIs(t, err, acquire.ErrNoVideoTrack)
}

func TestClient_SnapshotAt(t *testing.T) {
	testServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodGet && r.URL.Path == "/videos/video-1/snapshot" &&
			r.URL.Query().Get("tMs") == "700" {
			_, _ = w.Write([]byte("snapshot-jpeg"))
			return
		}
		http.Error(w, "unexpected path/method", http.StatusBadRequest)
	}))
	defer testServer.Close()

	client := NewClient(testServer.URL, "", testServer.Client())
	frameBytes, err := client.SnapshotAt(context.Background(), "video-1", 700*time.Millisecond)
	require.NoError(t, err)
	assert.Equal(t, []byte("snapshot-jpeg"), frameBytes)
}

func TestClient_Estimate(t *testing.T) {
	testServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/pose/estimate", r.URL.Path)
		assert.Equal(t, "image/jpeg", r.Header.Get("Content-Type"))

		body, err := io.ReadAll(r.Body)
		require.NoError(t, err)
		assert.Equal(t, []byte("frame-jpeg"), body)

		// root joint detected, left hip missing, rest omitted
		_, _ = fmt.Fprint(w, `{"keypoints":[{"x":0.5,"y":0.4,"confidence":0.92},null]}`)
	}))
	defer testServer.Close()

	client := NewClient(testServer.URL, "", testServer.Client())
	keypoints, err := client.Estimate(context.Background(), &acquire.Frame{Data: []byte("frame-jpeg")})
	require.NoError(t, err)

	require.NotNil(t, keypoints[pose.Root])
	assert.InDelta(t, 0.5, keypoints[pose.Root].X, 1e-9)
	assert.InDelta(t, 0.92, keypoints[pose.Root].Confidence, 1e-9)
	assert.Nil(t, keypoints[pose.LeftHip])
	assert.Nil(t, keypoints[pose.RightShoulder])
}

func TestClient_Estimate_ServerError(t *testing.T) {
	testServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "model not loaded", http.StatusServiceUnavailable)
	}))
	defer testServer.Close()

	client := NewClient(testServer.URL, "", testServer.Client())
	_, err := client.Estimate(context.Background(), &acquire.Frame{Data: []byte("frame-jpeg")})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unexpected status 503")
}
