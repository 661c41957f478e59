// Package publishing covers the Publishing app: episodes, series and channels.
package publishing

import (
	"context"

	"github.com/deploymenttheory/go-api-sdk-planningcenter/resources"
)

const basePath = "/publishing/v2"

type EpisodeAttributes struct {
	Title                 string `json:"title,omitempty"`
	Description           string `json:"description,omitempty"`
	PublishedAt           string `json:"published_at,omitempty"`
	ImageURL              string `json:"image_url,omitempty"`
	Duration              *int   `json:"duration,omitempty"`
	VideoURL              string `json:"video_url,omitempty"`
	AudioURL              string `json:"audio_url,omitempty"`
	ChurchCenterPublished bool   `json:"church_center_published,omitempty"`
	CreatedAt             string `json:"created_at,omitempty"`
	UpdatedAt             string `json:"updated_at,omitempty"`
}

type SeriesAttributes struct {
	Title       string `json:"title,omitempty"`
	Description string `json:"description,omitempty"`
	ImageURL    string `json:"image_url,omitempty"`
	CreatedAt   string `json:"created_at,omitempty"`
	UpdatedAt   string `json:"updated_at,omitempty"`
}

type ChannelAttributes struct {
	Name      string `json:"name,omitempty"`
	URL       string `json:"url,omitempty"`
	CreatedAt string `json:"created_at,omitempty"`
	UpdatedAt string `json:"updated_at,omitempty"`
}

type (
	Episode = resources.Entity[EpisodeAttributes]
	Series  = resources.Entity[SeriesAttributes]
	Channel = resources.Entity[ChannelAttributes]
)

// Service groups the Publishing app endpoints.
type Service struct {
	Episodes *resources.Resource[EpisodeAttributes]
	Series   *resources.Resource[SeriesAttributes]
	Channels *resources.Resource[ChannelAttributes]
}

// New returns the Publishing app bound to client.
func New(client resources.Requester) *Service {
	return &Service{
		Episodes: resources.New[EpisodeAttributes](client, "Episode", basePath+"/episodes"),
		Series:   resources.New[SeriesAttributes](client, "Series", basePath+"/series"),
		Channels: resources.New[ChannelAttributes](client, "Channel", basePath+"/channels"),
	}
}

// ListChannelEpisodes lists the episodes published on one channel.
func (s *Service) ListChannelEpisodes(ctx context.Context, channelID string, opts *resources.ListOptions) (*resources.Document[[]Episode], error) {
	return resources.Under[EpisodeAttributes](s.Channels, "Episode", "channel_id", channelID, "episodes").List(ctx, opts)
}
