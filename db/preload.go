package db

func InitPreload() {
	fillSpaceSettings()
}
