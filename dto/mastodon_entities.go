package dto

const (
	VisibilityPublic   = "public"
	VisibilityUnlisted = "unlisted"
	VisibilityPrivate  = "private"
	VisibilityDirect   = "direct"
)

type Account struct {
	Id          string `json:"id"`
	Username    string `json:"username"`
	Acct        string `json:"acct"`
	DisplayName string `json:"display_name"`
	Avatar      string `json:"avatar"`
	Url         string `json:"url,omitempty"`
}

type AppRegistrationRequest struct {
	ClientName   string `json:"client_name"`
	RedirectUris string `json:"redirect_uris"`
	Scopes       string `json:"scopes"`
	Website      string `json:"website"`
}

type AppRegistration struct {
	Id           string `json:"id"`
	Name         string `json:"name"`
	ClientId     string `json:"client_id"`
	ClientSecret string `json:"client_secret"`
	RedirectUri  string `json:"redirect_uri"`
}

type TokenPayload struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
	Scope       string `json:"scope"`
	CreatedAt   int64  `json:"created_at"`
}

type PollParams struct {
	Options    []string `json:"options"`
	ExpiresIn  int      `json:"expires_in"`
	Multiple   bool     `json:"multiple,omitempty"`
	HideTotals bool     `json:"hide_totals,omitempty"`
}

// TootParams is the body of a status submission.
// A non-empty ScheduledAt makes the server schedule the post instead of publishing it.
type TootParams struct {
	Status      string      `json:"status"`
	MediaIds    []string    `json:"media_ids"`
	ScheduledAt string      `json:"scheduled_at,omitempty"`
	Visibility  string      `json:"visibility"`
	Sensitive   bool        `json:"sensitive"`
	SpoilerText string      `json:"spoiler_text"`
	Language    *string     `json:"language"`
	Poll        *PollParams `json:"poll,omitempty"`
}

// ScheduledParams is how the server echoes back the parameters of a scheduled post.
type ScheduledParams struct {
	Text        string      `json:"text"`
	MediaIds    []string    `json:"media_ids"`
	ScheduledAt *string     `json:"scheduled_at"`
	Visibility  string      `json:"visibility"`
	Sensitive   bool        `json:"sensitive"`
	SpoilerText string      `json:"spoiler_text"`
	Language    *string     `json:"language"`
	Poll        *PollParams `json:"poll,omitempty"`
}

type ScheduledStatus struct {
	Id               string             `json:"id"`
	ScheduledAt      string             `json:"scheduled_at"`
	Params           ScheduledParams    `json:"params"`
	MediaAttachments []*MediaAttachment `json:"media_attachments"`
}

// StatusResult is returned by a status submission: a scheduled post (Params set)
// or a published status (Content set).
type StatusResult struct {
	Id               string             `json:"id"`
	ScheduledAt      string             `json:"scheduled_at,omitempty"`
	Params           *ScheduledParams   `json:"params,omitempty"`
	Content          string             `json:"content,omitempty"`
	CreatedAt        string             `json:"created_at,omitempty"`
	Visibility       string             `json:"visibility,omitempty"`
	Url              string             `json:"url,omitempty"`
	SpoilerText      string             `json:"spoiler_text,omitempty"`
	Language         *string            `json:"language,omitempty"`
	MediaAttachments []*MediaAttachment `json:"media_attachments"`
}

func (sr *StatusResult) IsScheduled() bool {
	return sr.Params != nil
}

func (sr *StatusResult) Text() string {
	if sr.Params != nil {
		return sr.Params.Text
	}
	return sr.Content
}

type Focus struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

type MediaMeta struct {
	Focus *Focus `json:"focus,omitempty"`
}

type MediaAttachment struct {
	Id          string     `json:"id"`
	Type        string     `json:"type"`
	Url         string     `json:"url"`
	PreviewUrl  string     `json:"preview_url"`
	Description *string    `json:"description"`
	Meta        *MediaMeta `json:"meta,omitempty"`
}

type Tag struct {
	Name      string `json:"name"`
	Url       string `json:"url"`
	Following bool   `json:"following"`
}

// ServerError is the error body Mastodon returns for failed requests.
type ServerError struct {
	Error            string `json:"error"`
	ErrorDescription string `json:"error_description"`
}
