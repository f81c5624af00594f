package vision

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	log "github.com/sirupsen/logrus"

	"github.com/Surya-Kukkapalli/Spot-sub001/internal/formcheck/acquire"
	"github.com/Surya-Kukkapalli/Spot-sub001/internal/formcheck/pose"
)

// Client talks to the platform vision sidecar, which owns the actual
// video decoding and the pose estimation model. It implements both
// acquire.VideoSource and acquire.PoseEstimator.
type Client struct {
	baseURL    string // e.g. http://localhost:9610/v1
	apiKey     string
	httpClient *http.Client
}

func NewClient(baseURL, apiKey string, httpClient *http.Client) *Client {
	return &Client{
		baseURL:    baseURL,
		apiKey:     apiKey,
		httpClient: httpClient,
	}
}

type openTrackRequest struct {
	VideoID string `json:"videoId"`
}

type openTrackResponse struct {
	TrackID   string  `json:"trackId"`
	FrameRate float64 `json:"frameRate"` // 0 when the container does not declare one
}

type nextFrameResponse struct {
	TimestampMs int64  `json:"timestampMs"`
	Frame       []byte `json:"frame"` // base64 in transit, decoded by encoding/json
}

type estimateResponse struct {
	Keypoints []*keypointJSON `json:"keypoints"`
}

type keypointJSON struct {
	X          float64 `json:"x"`
	Y          float64 `json:"y"`
	Confidence float64 `json:"confidence"`
}

func (c *Client) OpenTrack(ctx context.Context, videoID string) (acquire.Track, error) {
	reqBody, err := json.Marshal(openTrackRequest{VideoID: videoID})
	if err != nil {
		return nil, fmt.Errorf("marshal open track request: %w", err)
	}

	respBytes, status, err := c.do(ctx, http.MethodPost, "/tracks", bytes.NewReader(reqBody), "application/json")
	if err != nil {
		return nil, err
	}
	if status == http.StatusNotFound {
		return nil, acquire.ErrNoVideoTrack
	}
	if status != http.StatusOK {
		return nil, fmt.Errorf("open track for video [%s]: unexpected status %d", videoID, status)
	}

	var opened openTrackResponse
	if err := json.Unmarshal(respBytes, &opened); err != nil {
		return nil, fmt.Errorf("unmarshal open track response: %w", err)
	}

	log.Debugf("vision: opened track [%s] for video [%s], frame rate %.2f", opened.TrackID, videoID, opened.FrameRate)

	return &remoteTrack{
		client:    c,
		trackID:   opened.TrackID,
		frameRate: opened.FrameRate,
	}, nil
}

func (c *Client) SnapshotAt(ctx context.Context, videoID string, at time.Duration) ([]byte, error) {
	path := fmt.Sprintf("/videos/%s/snapshot?tMs=%d", videoID, at.Milliseconds())
	respBytes, status, err := c.do(ctx, http.MethodGet, path, nil, "")
	if err != nil {
		return nil, err
	}
	if status != http.StatusOK {
		return nil, fmt.Errorf("snapshot video [%s] at %s: unexpected status %d", videoID, at, status)
	}
	return respBytes, nil
}

func (c *Client) Estimate(ctx context.Context, frame *acquire.Frame) (acquire.Keypoints, error) {
	respBytes, status, err := c.do(ctx, http.MethodPost, "/pose/estimate", bytes.NewReader(frame.Data), "image/jpeg")
	if err != nil {
		return acquire.Keypoints{}, err
	}
	if status != http.StatusOK {
		return acquire.Keypoints{}, fmt.Errorf("pose estimate: unexpected status %d", status)
	}

	var estimated estimateResponse
	if err := json.Unmarshal(respBytes, &estimated); err != nil {
		return acquire.Keypoints{}, fmt.Errorf("unmarshal pose estimate response: %w", err)
	}

	var keypoints acquire.Keypoints
	for j := 0; j < pose.NumJoints && j < len(estimated.Keypoints); j++ {
		kp := estimated.Keypoints[j]
		if kp == nil {
			continue
		}
		keypoints[j] = &acquire.Keypoint{X: kp.X, Y: kp.Y, Confidence: kp.Confidence}
	}
	return keypoints, nil
}

func (c *Client) do(ctx context.Context, method, path string, body io.Reader, contentType string) (_ []byte, status int, err error) {
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return nil, 0, fmt.Errorf("new request: %w", err)
	}
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	if c.apiKey != "" {
		req.Header.Set("X-Vision-Api-Key", c.apiKey)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, 0, fmt.Errorf("http client do: %w", err)
	}
	defer resp.Body.Close()

	respBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, resp.StatusCode, fmt.Errorf("read response bytes: %w", err)
	}
	return respBytes, resp.StatusCode, nil
}

type remoteTrack struct {
	client    *Client
	trackID   string
	frameRate float64
}

func (t *remoteTrack) Next(ctx context.Context) (*acquire.Frame, error) {
	path := fmt.Sprintf("/tracks/%s/next", t.trackID)
	respBytes, status, err := t.client.do(ctx, http.MethodPost, path, nil, "")
	if err != nil {
		return nil, err
	}
	switch status {
	case http.StatusOK:
		// fall through to decode below
	case http.StatusNoContent:
		return nil, io.EOF
	default:
		return nil, fmt.Errorf("next frame of track [%s]: unexpected status %d", t.trackID, status)
	}

	var next nextFrameResponse
	if err := json.Unmarshal(respBytes, &next); err != nil {
		return nil, fmt.Errorf("unmarshal next frame response: %w", err)
	}

	return &acquire.Frame{
		Data:      next.Frame,
		Timestamp: time.Duration(next.TimestampMs) * time.Millisecond,
	}, nil
}

func (t *remoteTrack) FrameRate() (float64, bool) {
	return t.frameRate, t.frameRate > 0
}

func (t *remoteTrack) Close() error {
	// the sidecar drops idle tracks on its own; the delete just hurries it
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	_, status, err := t.client.do(ctx, http.MethodDelete, "/tracks/"+t.trackID, nil, "")
	if err != nil {
		return fmt.Errorf("close track [%s]: %w", t.trackID, err)
	}
	if status != http.StatusOK && status != http.StatusNoContent {
		return fmt.Errorf("close track [%s]: unexpected status %d", t.trackID, status)
	}
	return nil
}
