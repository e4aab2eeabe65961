package templates

// Card template - the public business card page. Sections arrive
// pre-resolved and in display order; the template only draws what it is
// given.

func GetCardTemplate() string {
	return cardContent
}

var cardContent = `{{define "content"}}
{{$theme := .Card.Theme}}
<article class="card" style="background: {{$theme.CardBg}}; border-color: {{$theme.Primary}}; color: {{$theme.Text}}">
  {{range .Card.Sections}}
  {{if eq .Kind "identity"}}{{with .Identity}}
  <section class="identity">
    {{if .Image.Src}}
    <img class="avatar" src="{{.Image.Src}}" alt="{{.Name}}'s profile picture" style="border-color: {{$theme.Primary}}" loading="lazy">
    {{else}}
    <div class="avatar avatar-placeholder" style="border-color: {{$theme.Primary}}" aria-hidden="true">&#128100;</div>
    {{end}}
    <h1 style="color: {{$theme.AccentText}}">{{.Name}}</h1>
    <p class="role" style="color: {{$theme.Secondary}}">{{.Role}}</p>
    {{if .DescriptionHTML}}
    <div class="description">{{.DescriptionHTML}}</div>
    {{else}}
    <p class="description">{{.Description}}</p>
    {{end}}
  </section>
  {{end}}{{end}}
  {{if eq .Kind "links"}}
  <section class="links">
    <h2 style="color: {{$theme.Primary}}">Links</h2>
    <div class="link-grid">
      {{range .Links}}
      <a class="link-button" href="{{.URL}}" target="_blank" rel="noopener noreferrer" style="border-color: {{$theme.Secondary}}; color: {{$theme.Secondary}}">{{.Label}}</a>
      {{end}}
    </div>
  </section>
  {{end}}
  {{if eq .Kind "video"}}{{with .Video}}
  <section class="video">
    <h2 style="color: {{$theme.Primary}}">Video</h2>
    <div class="video-frame">
      <iframe src="{{.EmbedURL}}" title="Video" allow="accelerometer; clipboard-write; encrypted-media; gyroscope; picture-in-picture" allowfullscreen loading="lazy"></iframe>
    </div>
  </section>
  {{end}}{{end}}
  {{if eq .Kind "share"}}{{with .Share}}
  <section class="share">
    <h2 style="color: {{$theme.Primary}}">Share</h2>
    <div class="qr-frame" style="border-color: {{$theme.Primary}}">
      <img src="{{.QRPath}}" width="128" height="128" alt="QR code linking to this card">
    </div>
    <p class="share-url"><a href="{{.URL}}">{{.URL}}</a></p>
    <p class="share-hint" style="color: {{$theme.Secondary}}">Scan to open this card</p>
  </section>
  {{end}}{{end}}
  {{end}}
</article>
<p style="margin-top: 1rem"><a href="/">&larr; Back to home</a></p>
{{end}}`
