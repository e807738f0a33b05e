package ingest

// Fixed instruction texts prepended to each chunk. Kept in Spanish - the
// corpus of convocatoria documents and the serving model are Spanish.
const (
	requirementPrompt = "Extrae únicamente los requisitos de la convocatoria en el siguiente texto. " +
		"No agregues encabezados, numeraciones, ni menciones a bloques. " +
		"Devuélvelo en un listado limpio y claro:\n\n"

	faqPrompt = "Genera una pregunta frecuente relacionada a los requisitos que aparecen en este texto, " +
		"y la respuesta clara y breve a esa pregunta. " +
		"Devuelve solo la pregunta y respuesta separadas por '||':\n\n"
)
