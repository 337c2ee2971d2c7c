package store

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/hotdogccs/hotdogsim/internal/models"
	"go.uber.org/zap"
)

// RemoteDocument is the shape of one remote JSON payload. Any subset of the
// fields may be present.
type RemoteDocument struct {
	Ingredients []models.Ingredient `json:"ingredients"`
	MenuItems   []models.MenuItem   `json:"menu_items"`
	Inventory   map[string]int      `json:"inventory"`
}

// contentEntry is the slice element of the GitHub contents API response.
type contentEntry struct {
	Name        string `json:"name"`
	DownloadURL string `json:"download_url"`
}

// RemoteSource fetches seed data from a GitHub repository: it lists the repo
// contents, downloads every JSON file and merges each payload into the store.
// Failures are reported but never fatal; the caller continues with whatever
// other source succeeded.
type RemoteSource struct {
	client *resty.Client
	repo   string
	log    *zap.Logger
}

// NewRemoteSource builds a source for a repository URL such as
// "https://github.com/owner/repo".
func NewRemoteSource(repo string, log *zap.Logger) *RemoteSource {
	if log == nil {
		log = zap.NewNop()
	}
	client := resty.New().
		SetTimeout(10 * time.Second).
		SetHeader("Accept", "application/vnd.github+json")
	return &RemoteSource{client: client, repo: repo, log: log}
}

// LoadInto merges every remote JSON file into the store. Ingredients first
// seen remotely get defaultQuantity units of stock.
func (r *RemoteSource) LoadInto(s *Store, defaultQuantity int) error {
	repoPath := strings.Trim(strings.TrimPrefix(r.repo, "https://github.com/"), "/")
	listURL := fmt.Sprintf("https://api.github.com/repos/%s/contents", repoPath)

	var entries []contentEntry
	resp, err := r.client.R().SetResult(&entries).Get(listURL)
	if err != nil {
		return fmt.Errorf("list repository contents: %w", err)
	}
	if resp.IsError() {
		return fmt.Errorf("list repository contents: status %d", resp.StatusCode())
	}

	merged := 0
	for _, entry := range entries {
		if !strings.HasSuffix(entry.Name, ".json") || entry.DownloadURL == "" {
			continue
		}
		fileResp, err := r.client.R().Get(entry.DownloadURL)
		if err != nil || fileResp.IsError() {
			r.log.Warn("skipping remote file", zap.String("file", entry.Name), zap.Error(err))
			continue
		}
		var doc RemoteDocument
		if err := json.Unmarshal(fileResp.Body(), &doc); err != nil {
			r.log.Warn("skipping malformed remote file", zap.String("file", entry.Name), zap.Error(err))
			continue
		}
		s.MergeRemote(doc, defaultQuantity)
		merged++
	}
	if merged == 0 {
		return fmt.Errorf("no usable JSON files in %s", repoPath)
	}
	r.log.Info("remote data loaded", zap.String("repo", repoPath), zap.Int("files", merged))
	return nil
}

// LoadAll loads the remote source first and the local file second, so local
// values override remote ones. Either source failing contributes nothing; the
// store tolerates starting completely empty.
func (s *Store) LoadAll(remote *RemoteSource, defaultQuantity int) {
	if remote != nil {
		if err := remote.LoadInto(s, defaultQuantity); err != nil {
			s.log.Warn("remote load failed, continuing without it", zap.Error(err))
		}
	}
	if err := s.LoadLocal(); err != nil {
		s.log.Warn("local load failed, continuing without it", zap.Error(err))
	}
}
