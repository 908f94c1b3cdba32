package client

// http_client.go = typed access to the dormitory API for the dormctl application.

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime"
	"net/http"
	"path"
	"strconv"
	"time"

	"dormhub/internal/microservices/http-api/dto"
	"dormhub/internal/microservices/http-api/models"
)

const (
	ratingsPath   = "/management/ratings/ratings/"
	residentsPath = "/management/residents/residents/"
)

// APIError is a non-2xx answer from the API server
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("request failed with status %d", e.StatusCode)
	}
	return fmt.Sprintf("request failed with status %d: %s", e.StatusCode, e.Message)
}

// IsStatus reports whether err is an APIError carrying the given status
func IsStatus(err error, status int) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr) && apiErr.StatusCode == status
}

// envelope mirrors the success body of the management routes
type envelope[T any] struct {
	Status  string `json:"status"`
	Data    T      `json:"data"`
	Message string `json:"message"`
}

// defines the HTTP client structure and methods
type HTTPClient struct {
	baseURL    string
	httpClient *http.Client
	token      string
}

// constructor for HTTP client
func NewHTTPClient(apiURL string) *HTTPClient {
	return &HTTPClient{
		baseURL: apiURL,
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

// set token for HTTP client
func (c *HTTPClient) SetToken(token string) {
	c.token = token
}

func (c *HTTPClient) newRequest(ctx context.Context, method, route string, body any) (*http.Request, error) {
	var reader io.Reader
	if body != nil {
		jsonData, err := json.Marshal(body)
		if err != nil {
			return nil, err
		}
		reader = bytes.NewReader(jsonData)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+route, reader)
	if err != nil {
		return nil, err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}
	return req, nil
}

// do sends the request and decodes a 2xx body into out when out is not nil
func (c *HTTPClient) do(ctx context.Context, method, route string, body, out any) error {
	req, err := c.newRequest(ctx, method, route, body)
	if err != nil {
		return err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return decodeError(resp)
	}
	if out == nil || resp.StatusCode == http.StatusNoContent {
		return nil
	}
	return json.NewDecoder(resp.Body).Decode(out)
}

func decodeError(resp *http.Response) error {
	var body struct {
		Error string `json:"error"`
	}
	// error bodies are best effort, the status code is what matters
	_ = json.NewDecoder(resp.Body).Decode(&body)
	return &APIError{StatusCode: resp.StatusCode, Message: body.Error}
}

// register method for HTTP client
func (c *HTTPClient) Register(ctx context.Context, request *dto.RegisterRequest) (*dto.UserResponse, error) {
	var result dto.UserResponse
	if err := c.do(ctx, http.MethodPost, "/auth/register", request, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// login method for HTTP client
func (c *HTTPClient) Login(ctx context.Context, request *dto.LoginRequest) (*dto.AuthResponse, error) {
	var result dto.AuthResponse
	if err := c.do(ctx, http.MethodPost, "/auth/jwt/login", request, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// Logout revokes the current session on the server
func (c *HTTPClient) Logout(ctx context.Context) error {
	return c.do(ctx, http.MethodPost, "/auth/jwt/logout", nil, nil)
}

// Me returns the account the token belongs to
func (c *HTTPClient) Me(ctx context.Context) (*dto.UserResponse, error) {
	var result dto.UserResponse
	if err := c.do(ctx, http.MethodGet, "/users/me", nil, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// Ratings

func (c *HTTPClient) ListRatings(ctx context.Context) ([]models.ResidentRating, error) {
	var result envelope[[]models.ResidentRating]
	if err := c.do(ctx, http.MethodGet, ratingsPath, nil, &result); err != nil {
		return nil, err
	}
	return result.Data, nil
}

// GetRating looks a rating up by the resident it belongs to
func (c *HTTPClient) GetRating(ctx context.Context, residentID int64) (*models.ResidentRating, error) {
	var result envelope[models.ResidentRating]
	if err := c.do(ctx, http.MethodGet, ratingsPath+strconv.FormatInt(residentID, 10), nil, &result); err != nil {
		return nil, err
	}
	return &result.Data, nil
}

func (c *HTTPClient) CreateRating(ctx context.Context, request *dto.CreateRatingDTO) (*models.ResidentRating, error) {
	var result envelope[models.ResidentRating]
	if err := c.do(ctx, http.MethodPost, ratingsPath, request, &result); err != nil {
		return nil, err
	}
	return &result.Data, nil
}

// IncreaseAchievement applies a small/medium/large achievement to a rating
func (c *HTTPClient) IncreaseAchievement(ctx context.Context, ratingID int64, changeType string) (*models.ResidentRating, error) {
	return c.adjustRating(ctx, ratingID, "increase_achievement", changeType)
}

// DecreaseInfraction records a minor/moderate/major infraction on a rating
func (c *HTTPClient) DecreaseInfraction(ctx context.Context, ratingID int64, changeType string) (*models.ResidentRating, error) {
	return c.adjustRating(ctx, ratingID, "decrease_infraction", changeType)
}

func (c *HTTPClient) adjustRating(ctx context.Context, ratingID int64, action, changeType string) (*models.ResidentRating, error) {
	route := ratingsPath + path.Join(strconv.FormatInt(ratingID, 10), action, changeType)
	var result envelope[models.ResidentRating]
	if err := c.do(ctx, http.MethodPatch, route, nil, &result); err != nil {
		return nil, err
	}
	return &result.Data, nil
}

func (c *HTTPClient) DeleteRating(ctx context.Context, ratingID int64) error {
	return c.do(ctx, http.MethodDelete, ratingsPath+strconv.FormatInt(ratingID, 10), nil, nil)
}

// Management views

func (c *HTTPClient) Summary(ctx context.Context) (*models.OccupancySummary, error) {
	var result envelope[models.OccupancySummary]
	if err := c.do(ctx, http.MethodGet, "/management/summary/all/", nil, &result); err != nil {
		return nil, err
	}
	return &result.Data, nil
}

func (c *HTTPClient) AvailableRooms(ctx context.Context) ([]models.RoomView, error) {
	var result envelope[[]models.RoomView]
	if err := c.do(ctx, http.MethodGet, "/management/available_rooms/", nil, &result); err != nil {
		return nil, err
	}
	return result.Data, nil
}

func (c *HTTPClient) ResidentsWithoutRoom(ctx context.Context) ([]models.Resident, error) {
	var result envelope[[]models.Resident]
	if err := c.do(ctx, http.MethodGet, residentsPath+"no-room", nil, &result); err != nil {
		return nil, err
	}
	return result.Data, nil
}

// Documents

// CheckInNotice streams the check-in notice of a resident into dst and
// returns the file name suggested by the server.
func (c *HTTPClient) CheckInNotice(ctx context.Context, residentID int64, dst io.Writer) (string, error) {
	route := fmt.Sprintf("/management/residents/%d/check-in-document", residentID)
	return c.download(ctx, route, dst)
}

// RelocationNotice streams the relocation notice of a resident into dst
func (c *HTTPClient) RelocationNotice(ctx context.Context, residentID, oldRoomID int64, dst io.Writer) (string, error) {
	route := fmt.Sprintf("/management/residents/%d/relocation-document?old_room_id=%d", residentID, oldRoomID)
	return c.download(ctx, route, dst)
}

func (c *HTTPClient) download(ctx context.Context, route string, dst io.Writer) (string, error) {
	req, err := c.newRequest(ctx, http.MethodGet, route, nil)
	if err != nil {
		return "", err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", decodeError(resp)
	}
	if _, err := io.Copy(dst, resp.Body); err != nil {
		return "", fmt.Errorf("read document: %w", err)
	}

	_, params, err := mime.ParseMediaType(resp.Header.Get("Content-Disposition"))
	if err != nil || params["filename"] == "" {
		return "", nil
	}
	return path.Base(params["filename"]), nil
}
