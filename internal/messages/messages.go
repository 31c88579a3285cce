package messages

import (
	"golang.org/x/text/language"
)

// Messages are the user-facing strings of the editor.
type Messages struct {
	Invalid        string
	Saved          string
	Opened         string
	NoProjects     string
	ArchiveSaved   string
	PackSaved      string
	Created        string
	Removed        string
	RemovedCurrent string
}

var supported = []language.Tag{
	language.English, // first tag is the fallback
	language.BrazilianPortuguese,
	language.Spanish,
}

var catalog = []Messages{
	{
		Invalid:        "Invalid data!",
		Saved:          "Project saved",
		Opened:         "Project opened",
		NoProjects:     "(no projects)",
		ArchiveSaved:   "Archive written",
		PackSaved:      "Pack written",
		Created:        "Project created",
		Removed:        "Project removed",
		RemovedCurrent: "removed the current project; saving again will recreate it",
	},
	{
		Invalid:        "Dados inválidos!",
		Saved:          "Projeto salvo",
		Opened:         "Projeto aberto",
		NoProjects:     "(nenhum projeto)",
		ArchiveSaved:   "Arquivo gerado",
		PackSaved:      "Pacote gerado",
		Created:        "Projeto criado",
		Removed:        "Projeto removido",
		RemovedCurrent: "o projeto atual foi removido; salvar novamente vai recriá-lo",
	},
	{
		Invalid:        "¡Datos inválidos!",
		Saved:          "Proyecto guardado",
		Opened:         "Proyecto abierto",
		NoProjects:     "(sin proyectos)",
		ArchiveSaved:   "Archivo generado",
		PackSaved:      "Paquete generado",
		Created:        "Proyecto creado",
		Removed:        "Proyecto eliminado",
		RemovedCurrent: "se eliminó el proyecto actual; guardarlo de nuevo lo recreará",
	},
}

var matcher = language.NewMatcher(supported)

// Get returns the messages for the closest supported locale. Unknown or
// unparsable locales get English.
func Get(locale string) Messages {
	_, i := language.MatchStrings(matcher, locale)
	if i < 0 || i >= len(catalog) {
		return catalog[0]
	}
	return catalog[i]
}
