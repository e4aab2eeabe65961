package templates

// Home template - landing page with the recent cards grid.

func GetHomeTemplate() string {
	return homeContent
}

var homeContent = `{{define "content"}}
<h1>Digital business cards</h1>
<p>Create a card for yourself and share it with a link or QR code. Cards published in the public catalog are viewable here too.</p>
<p><a href="/create-card" class="btn-primary">Create your card</a></p>

<h2 style="margin-top: 2rem">Recent cards</h2>
{{if .Recents}}
<div class="recents-grid">
  {{range .Recents}}
  <div class="recent-card">
    <a href="/card/{{.Username}}"><img src="/card/{{.Username}}/qr.png?size=96" width="96" height="96" alt="QR code for {{.Username}}" loading="lazy"></a>
    <span class="recent-name">{{if .Name}}{{.Name}}{{else}}{{.Username}}{{end}}</span>
    <span class="recent-type">{{if eq .Type "created"}}Created by you{{else}}Recently viewed{{end}}</span>
    <a href="/card/{{.Username}}" class="btn-primary btn-small">View</a>
  </div>
  {{end}}
</div>
{{else}}
<p class="empty-state">No cards yet. Cards you create or view will show up here.</p>
{{end}}
{{end}}`
