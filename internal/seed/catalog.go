package seed

import "time"

// Baseline reference data the seeder reconciles the store against.
const (
	AdminUsername    = "admin"
	AdminEmail       = "admin@gmail.com"
	AdminPassword    = "12345678"
	CategoryCount    = 5
	DefaultRoleCount = 2
)

// DefaultCategories are created, in order, only when no categories exist at all.
var DefaultCategories = []string{
	"Entertainment",
	"Education",
	"Technology",
	"Sports",
	"Music",
}

// SampleVideo describes one catalog entry. UploadOffset is subtracted from the
// reconciliation time so re-seeded videos keep a plausible recency spread.
type SampleVideo struct {
	Title        string
	Description  string
	UploadOffset time.Duration
	Duration     int
	URL          string
	ThumbnailURL string
	Category     string
}

// SampleVideos is the fixed catalog; entries are matched against the store by URL only.
var SampleVideos = []SampleVideo{
	{
		Title:        "RoDynRF - Dynamic Neural Radiance Fields",
		Description:  "Explore the cutting-edge research in dynamic neural radiance fields for 3D scene reconstruction.",
		UploadOffset: 10 * 24 * time.Hour,
		Duration:     180,
		URL:          "/videos/RoDynRF.mp4",
		ThumbnailURL: "/assets/RoDynRF.jpg",
		Category:     "Technology",
	},
	{
		Title:        "A Lot - Music Video",
		Description:  "Enjoy this amazing music video featuring incredible visuals and beats.",
		UploadOffset: 9 * 24 * time.Hour,
		Duration:     240,
		URL:          "/videos/alot.mp4",
		ThumbnailURL: "/assets/alot.jpg",
		Category:     "Music",
	},
	{
		Title:        "Backpropagation Explained",
		Description:  "Learn how backpropagation works in neural networks - the foundation of deep learning.",
		UploadOffset: 8 * 24 * time.Hour,
		Duration:     300,
		URL:          "/videos/backprop.mp4",
		ThumbnailURL: "/assets/backprop.jpg",
		Category:     "Education",
	},
	{
		Title:        "Chelsea Champions League Highlights",
		Description:  "Watch the best moments from Chelsea's Champions League campaign.",
		UploadOffset: 7 * 24 * time.Hour,
		Duration:     420,
		URL:          "/videos/chelseac3.mp4",
		ThumbnailURL: "/assets/chelsea.png",
		Category:     "Sports",
	},
	{
		Title:        "Chim Sau - Vietnamese Music",
		Description:  "Beautiful Vietnamese music video with stunning cinematography.",
		UploadOffset: 6 * 24 * time.Hour,
		Duration:     210,
		URL:          "/videos/chimsau.mp4",
		ThumbnailURL: "/assets/chimsau.png",
		Category:     "Music",
	},
	{
		Title:        "Clan - Epic Gaming Moments",
		Description:  "The most epic gaming clan moments compilation.",
		UploadOffset: 5 * 24 * time.Hour,
		Duration:     360,
		URL:          "/videos/clan.mp4",
		ThumbnailURL: "/assets/clan.jpg",
		Category:     "Entertainment",
	},
	{
		Title:        "CSM - Chainsaw Man",
		Description:  "Chainsaw Man anime highlights and best scenes.",
		UploadOffset: 4 * 24 * time.Hour,
		Duration:     280,
		URL:          "/videos/csm.mp4",
		ThumbnailURL: "/assets/video.jpg",
		Category:     "Entertainment",
	},
	{
		Title:        "Doraemon Classic Episodes",
		Description:  "Relive the classic Doraemon adventures with Nobita and friends.",
		UploadOffset: 3 * 24 * time.Hour,
		Duration:     600,
		URL:          "/videos/doraemon.mp4",
		ThumbnailURL: "/assets/doraemon.jpg",
		Category:     "Entertainment",
	},
	{
		Title:        "El Clasico - Real Madrid vs Barcelona",
		Description:  "The greatest rivalry in football - watch the best El Clasico moments.",
		UploadOffset: 2 * 24 * time.Hour,
		Duration:     720,
		URL:          "/videos/elclasico.mp4",
		ThumbnailURL: "/assets/elclasico.jpg",
		Category:     "Sports",
	},
	{
		Title:        "Word Embeddings Tutorial",
		Description:  "Understanding word embeddings in NLP - from Word2Vec to modern transformers.",
		UploadOffset: 24 * time.Hour,
		Duration:     360,
		URL:          "/videos/embeddings.mp4",
		ThumbnailURL: "/assets/embedding.jpg",
		Category:     "Education",
	},
	{
		Title:        "Love Is - Romantic Music",
		Description:  "A beautiful collection of romantic songs and melodies.",
		UploadOffset: 0,
		Duration:     300,
		URL:          "/videos/loveis.mp4",
		ThumbnailURL: "/assets/loveis.jpg",
		Category:     "Music",
	},
	{
		Title:        "Mission Impossible - Best Action Scenes",
		Description:  "The most thrilling action scenes from the Mission Impossible franchise.",
		UploadOffset: 12 * time.Hour,
		Duration:     240,
		URL:          "/videos/mission_impossible.mp4",
		ThumbnailURL: "/assets/mission_impossible.jpg",
		Category:     "Entertainment",
	},
	{
		Title:        "Manchester United vs Tottenham Highlights",
		Description:  "Premier League classic: Manchester United takes on Tottenham Hotspur.",
		UploadOffset: 6 * time.Hour,
		Duration:     300,
		URL:          "/videos/mu_spurs.mp4",
		ThumbnailURL: "/assets/mu_spurs.jpg",
		Category:     "Sports",
	},
	{
		Title:        "One Piece - Epic Moments",
		Description:  "The most epic moments from the legendary One Piece anime series.",
		UploadOffset: 3 * time.Hour,
		Duration:     480,
		URL:          "/videos/one_piece.mp4",
		ThumbnailURL: "/assets/onepiece.jpg",
		Category:     "Entertainment",
	},
	{
		Title:        "Predator - Movie Highlights",
		Description:  "Iconic scenes from the Predator movie franchise.",
		UploadOffset: 2 * time.Hour,
		Duration:     320,
		URL:          "/videos/predator.mp4",
		ThumbnailURL: "/assets/predator.jpg",
		Category:     "Entertainment",
	},
	{
		Title:        "Solo Leveling - Anime Highlights",
		Description:  "Experience the rise of Sung Jin-Woo in this Solo Leveling highlight reel.",
		UploadOffset: time.Hour,
		Duration:     540,
		URL:          "/videos/sololeveling.mp4",
		ThumbnailURL: "/assets/video.jpg",
		Category:     "Entertainment",
	},
}
