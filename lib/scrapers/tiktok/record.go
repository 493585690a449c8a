package tiktok

import (
	"fmt"

	"tiktok-discover/lib/chrono"
	"tiktok-discover/lib/textutil"
)

type AuthorMeta struct {
	ID        string  `json:"id"`
	Name      string  `json:"name"`
	Nickname  *string `json:"nickname"`
	Followers int64   `json:"followers"`
	Following int64   `json:"following"`
	Likes     int64   `json:"likes"`
	Videos    int64   `json:"videos"`
}

type MusicMeta struct {
	MusicID     string  `json:"musicId"`
	MusicName   *string `json:"musicName"`
	MusicAuthor *string `json:"musicAuthor"`
	CoverThumb  *string `json:"coverThumb"`
	CoverMedium *string `json:"coverMedium"`
	CoverLarge  *string `json:"coverLarge"`
}

type VideoMeta struct {
	Width    int64   `json:"width"`
	Height   int64   `json:"height"`
	Duration int64   `json:"duration"`
	Ratio    *string `json:"ratio"`
	Format   *string `json:"format"`
}

type DiscoveryInfo struct {
	Source        string   `json:"source"`
	SourceHashtag string   `json:"sourceHashtag"`
	Breadcrumb    []string `json:"breadcrumb"`
}

// Record is the canonical flat schema one video item normalizes into.
// It is immutable after construction and is the unit handed to the
// exporters.
type Record struct {
	ID            string        `json:"id"`
	Text          *string       `json:"text"`
	CreateTime    *int64        `json:"createTime"`
	CreateTimeISO *string       `json:"createTimeISO"`
	IsAd          bool          `json:"isAd"`
	AuthorMeta    AuthorMeta    `json:"authorMeta"`
	MusicMeta     MusicMeta     `json:"musicMeta"`
	WebVideoURL   *string       `json:"webVideoUrl"`
	MediaURLs     []string      `json:"mediaUrls"`
	VideoMeta     VideoMeta     `json:"videoMeta"`
	DiggCount     int64         `json:"diggCount"`
	ShareCount    int64         `json:"shareCount"`
	PlayCount     int64         `json:"playCount"`
	CollectCount  int64         `json:"collectCount"`
	CommentCount  int64         `json:"commentCount"`
	Hashtags      []string      `json:"hashtags"`
	DiscoveryInfo DiscoveryInfo `json:"discoveryInfo"`
}

// buildRecord maps one raw item plus its resolved music and author
// context into a Record. Field coercion never fails: counters default
// to zero and optional strings to null. The only error case is an item
// body that was not usable at all, which the batch extractor isolates.
func buildRecord(
	id string,
	item RawItem,
	music RawMusic,
	user RawUser,
	userStats RawUserStats,
	sourceHashtag string,
) Record {
	authorName := item.AuthorID()

	record := Record{
		ID:   id,
		Text: item.Desc(),
		IsAd: item.IsAd(),
		AuthorMeta: AuthorMeta{
			ID:        authorName,
			Name:      authorName,
			Nickname:  user.Nickname(),
			Followers: userStats.Followers(),
			Following: userStats.Following(),
			Likes:     userStats.Likes(),
			Videos:    userStats.Videos(),
		},
		MusicMeta: MusicMeta{
			MusicID:     item.MusicRef(),
			MusicName:   music.Title(),
			MusicAuthor: music.AuthorName(),
			CoverThumb:  music.CoverThumb(),
			CoverMedium: music.CoverMedium(),
			CoverLarge:  music.CoverLarge(),
		},
		MediaURLs: []string{},
		Hashtags:  []string{},
		DiscoveryInfo: DiscoveryInfo{
			Source:        "discover",
			SourceHashtag: textutil.NormalizeHashtag(sourceHashtag),
			Breadcrumb:    item.SuggestedWords(),
		},
	}

	if createTime, ok := item.CreateTime(); ok {
		iso := chrono.UnixToISO(createTime)
		record.CreateTime = &createTime
		record.CreateTimeISO = &iso
	}

	stats := item.Stats()
	record.DiggCount = safeInt(stats["diggCount"])
	record.ShareCount = safeInt(stats["shareCount"])
	record.PlayCount = safeInt(stats["playCount"])
	record.CollectCount = safeInt(stats["collectCount"])
	record.CommentCount = safeInt(stats["commentCount"])

	video := item.Video()
	record.VideoMeta = VideoMeta{
		Width:    safeInt(video["width"]),
		Height:   safeInt(video["height"]),
		Duration: safeInt(video["duration"]),
		Ratio:    optString(video["ratio"]),
		Format:   optString(video["format"]),
	}

	if playAddr, ok := video["playAddr"].(string); ok {
		record.MediaURLs = append(record.MediaURLs, playAddr)
	}
	if downloadAddr, ok := video["downloadAddr"].(string); ok {
		seen := false
		for _, existing := range record.MediaURLs {
			if existing == downloadAddr {
				seen = true
				break
			}
		}
		if !seen {
			record.MediaURLs = append(record.MediaURLs, downloadAddr)
		}
	}

	for _, tag := range item.TextExtra() {
		entry := subMap(tag)
		if entry == nil {
			continue
		}
		if name, ok := entry["hashtagName"].(string); ok && name != "" {
			record.Hashtags = append(record.Hashtags, name)
		}
	}

	if shareUrl := item.ShareURL(); shareUrl != "" {
		record.WebVideoURL = &shareUrl
	} else if authorName != "" {
		synthesized := fmt.Sprintf("https://www.tiktok.com/@%s/video/%s", authorName, id)
		record.WebVideoURL = &synthesized
	}

	return record
}
