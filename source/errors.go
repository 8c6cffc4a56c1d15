package source

type errFieldNotFound string

func (e errFieldNotFound) Error() string {
	return "field not found in payload JSON: " + string(e)
}

type errNotADirectory string

func (e errNotADirectory) Error() string {
	return "payloads path is not a directory: " + string(e)
}

type errEmptyField string

func (e errEmptyField) Error() string {
	return "empty field in payload JSON: " + string(e)
}
