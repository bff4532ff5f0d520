package render

import "strings"

// FormatImageURL corrige o caso comum de o usuário colar o link da página
// do Imgur em vez do link direto da imagem: um caminho com identificador
// sem extensão em imgur.com vira https://i.imgur.com/<id>.png. URLs já na
// forma direta (ou de outros hosts) passam inalteradas.
func FormatImageURL(url string) string {
	if url == "" {
		return ""
	}
	if strings.Contains(url, "imgur.com") && !strings.Contains(url, "i.imgur.com") {
		parts := strings.Split(url, "/")
		id := parts[len(parts)-1]
		if id != "" && !strings.Contains(id, ".") {
			return "https://i.imgur.com/" + id + ".png"
		}
	}
	return url
}
