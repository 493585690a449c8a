package tiktok

import (
	"context"
	"fmt"
	"net/url"
	"strings"
	"time"

	"tiktok-discover/lib/restyutil"
	"tiktok-discover/lib/textutil"

	cloudflarebp "github.com/DaRealFreak/cloudflare-bp-go"
	"github.com/go-resty/resty/v2"
	"go.opentelemetry.io/otel/codes"
)

const defaultBaseUrl = "https://www.tiktok.com/tag"
const defaultUserAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0 Safari/537.36"

// Client fetches Discover pages. Parsing lives in Parser, this type
// only owns the HTTP session.
type Client struct {
	BaseUrl string
	Http    *resty.Client
}

type ClientOptions struct {
	// defaults to the public Discover tag url
	BaseUrl string
	// defaults to a stock desktop Chrome user agent
	UserAgent string
	// defaults to 20 seconds
	Timeout time.Duration
}

func NewClient(opts ClientOptions) *Client {
	if opts.BaseUrl == "" {
		opts.BaseUrl = defaultBaseUrl
	}
	if opts.UserAgent == "" {
		opts.UserAgent = defaultUserAgent
	}
	if opts.Timeout == 0 {
		opts.Timeout = time.Second * 20
	}

	client := resty.New()
	client.GetClient().Transport = cloudflarebp.AddCloudFlareByPass(client.GetClient().Transport)
	client.SetHeader("user-agent", opts.UserAgent)
	client.SetTimeout(opts.Timeout)

	return &Client{
		BaseUrl: strings.TrimRight(opts.BaseUrl, "/"),
		Http:    client,
	}
}

// SetInstrumentOutput enables full request/response dumps for
// debugging scrape sessions.
func (c *Client) SetInstrumentOutput(output restyutil.InstrumentOutput) {
	restyutil.InstrumentClient(c.Http, tracer, output)
}

func (c *Client) DiscoverURL(hashtag string) string {
	tag := textutil.NormalizeHashtag(hashtag)
	return fmt.Sprintf("%s/%s", c.BaseUrl, url.PathEscape(tag))
}

// FetchDiscoverPage GETs the Discover page for a hashtag and returns
// its HTML. Non-2xx responses are errors, the caller decides whether
// to continue with other hashtags.
func (c *Client) FetchDiscoverPage(ctx context.Context, hashtag string) (string, error) {
	ctx, span := tracer.Start(ctx, "client:FetchDiscoverPage")
	defer span.End()

	link := c.DiscoverURL(hashtag)

	res, err := c.Http.R().
		SetContext(ctx).
		Get(link)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "failed to fetch discover page")
		return "", err
	}
	if res.IsError() {
		err := fmt.Errorf("tiktok responded with status %d for %s", res.StatusCode(), link)
		span.SetStatus(codes.Error, err.Error())
		return "", err
	}

	return res.String(), nil
}
