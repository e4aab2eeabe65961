package templates

// Not-found template - shown when no card exists for a username.

func GetNotFoundTemplate() string {
	return notFoundContent
}

var notFoundContent = `{{define "content"}}
<div class="empty-state">
  <h1>Card not found</h1>
  <p>{{.Message}}</p>
  <p><a href="/" class="btn-primary">Back to home</a> <a href="/create-card" class="btn-primary">Create a card</a></p>
</div>
{{end}}`
