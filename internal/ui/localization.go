package ui

// Localization manages UI text translations
type Localization struct {
	currentLanguage string
	texts           map[string]map[string]string
}

// Text keys for localization
const (
	KeyAppTitle          = "app_title"
	KeyFile              = "file"
	KeyNew               = "new"
	KeyOpen              = "open"
	KeySave              = "save"
	KeyExit              = "exit"
	KeySettings          = "settings"
	KeyInterfaceLanguage = "interface_language"

	KeyFieldLanguage       = "field_language"
	KeyFieldWord           = "field_word"
	KeyFieldMeaning        = "field_meaning"
	KeyLanguagePlaceholder = "language_placeholder"
	KeyWordPlaceholder     = "word_placeholder"
	KeyMeaningPlaceholder  = "meaning_placeholder"
	KeyAdd                 = "add"
	KeyUpdate              = "update"
	KeyReset               = "reset"
	KeyEntryCount          = "entry_count"

	KeyInputError      = "input_error"
	KeyFieldsBlank     = "fields_blank"
	KeyFieldsComma     = "fields_comma"
	KeyDuplicateTitle  = "duplicate_title"
	KeyDuplicateWord   = "duplicate_word"
	KeyEntryStored     = "entry_stored"
	KeyNewList         = "new_list"
	KeySuccess         = "success"
	KeySaveSuccessful  = "save_successful"
	KeyCanceled        = "canceled"
	KeyOpenCanceled    = "open_canceled"
	KeySaveCanceled    = "save_canceled"
	KeyFileNotFound    = "file_not_found"
	KeyFileNotFoundMsg = "file_not_found_msg"
	KeyIOError         = "io_error"
	KeyReadError       = "read_error"
	KeyWriteError      = "write_error"
	KeyInvalidData     = "invalid_data"
	KeyLinesSkipped    = "lines_skipped"
	KeyLoadAborted     = "load_aborted"
	KeyMoreLines       = "more_lines"
	KeyFileLoaded      = "file_loaded"

	KeyDefaultDirectory = "default_directory"
	KeyLoadPolicy       = "load_policy"
	KeyPolicySkip       = "policy_skip"
	KeyPolicyAbort      = "policy_abort"
	KeyBrowse           = "browse"
	KeyCancel           = "cancel"
	KeySettingsSaved    = "settings_saved"
)

// NewLocalization creates a new localization manager
func NewLocalization() *Localization {
	l := &Localization{
		currentLanguage: "en",
		texts:           make(map[string]map[string]string),
	}

	l.initializeTexts()
	return l
}

// SetLanguage sets the current language
func (l *Localization) SetLanguage(lang string) {
	if lang == "system" {
		// Use system locale - simplified to English for now
		lang = "en"
	}

	if _, exists := l.texts[lang]; exists {
		l.currentLanguage = lang
	}
}

// GetText returns localized text for the given key
func (l *Localization) GetText(key string) string {
	if texts, exists := l.texts[l.currentLanguage]; exists {
		if text, found := texts[key]; found {
			return text
		}
	}

	// Fallback to English
	if texts, exists := l.texts["en"]; exists {
		if text, found := texts[key]; found {
			return text
		}
	}

	// Final fallback - return key itself
	return key
}

// GetCurrentLanguage returns the current language code
func (l *Localization) GetCurrentLanguage() string {
	return l.currentLanguage
}

// GetAvailableLanguages returns map of available languages with their display names
func (l *Localization) GetAvailableLanguages() map[string]string {
	return map[string]string{
		"en": "English",
		"ru": "Русский",
		"pt": "Português",
	}
}

// initializeTexts initializes all text translations
func (l *Localization) initializeTexts() {
	// English texts
	l.texts["en"] = map[string]string{
		KeyAppTitle:          "LangLearn",
		KeyFile:              "File",
		KeyNew:               "New",
		KeyOpen:              "Open",
		KeySave:              "Save",
		KeyExit:              "Exit",
		KeySettings:          "Settings",
		KeyInterfaceLanguage: "Interface Language",

		KeyFieldLanguage:       "Language",
		KeyFieldWord:           "Word",
		KeyFieldMeaning:        "Meaning",
		KeyLanguagePlaceholder: "e.g. EN",
		KeyWordPlaceholder:     "e.g. cat",
		KeyMeaningPlaceholder:  "What the word means",
		KeyAdd:                 "Add",
		KeyUpdate:              "Update",
		KeyReset:               "Reset",
		KeyEntryCount:          "%d entries",

		KeyInputError:      "Input Error",
		KeyFieldsBlank:     "Fields cannot be blank. Please make sure all text fields are filled before adding.",
		KeyFieldsComma:     "Fields cannot contain commas.",
		KeyDuplicateTitle:  "Already in list",
		KeyDuplicateWord:   "The word %q is already in the list.",
		KeyEntryStored:     "Saved %s",
		KeyNewList:         "Started a new list",
		KeySuccess:         "Success",
		KeySaveSuccessful:  "The data has been saved successfully.",
		KeyCanceled:        "Canceled",
		KeyOpenCanceled:    "Open operation canceled. No file selected.",
		KeySaveCanceled:    "Save operation canceled. No file saved.",
		KeyFileNotFound:    "File Not Found",
		KeyFileNotFoundMsg: "The file could not be found. Please check the file path.",
		KeyIOError:         "IO Error",
		KeyReadError:       "An error occurred while reading the file. Please try again later.",
		KeyWriteError:      "An error occurred while saving the file. Please try again later.",
		KeyInvalidData:     "Invalid data",
		KeyLinesSkipped:    "Some lines could not be loaded and were skipped:",
		KeyLoadAborted:     "The file was not loaded because a line is invalid:",
		KeyMoreLines:       "...and %d more",
		KeyFileLoaded:      "Loaded %d entries from %s",

		KeyDefaultDirectory: "Default Directory",
		KeyLoadPolicy:       "Invalid Lines When Opening",
		KeyPolicySkip:       "Skip them and report",
		KeyPolicyAbort:      "Reject the whole file",
		KeyBrowse:           "Browse",
		KeyCancel:           "Cancel",
		KeySettingsSaved:    "Settings saved successfully!",
	}

	// Russian texts
	l.texts["ru"] = map[string]string{
		KeyAppTitle:          "LangLearn",
		KeyFile:              "Файл",
		KeyNew:               "Новый",
		KeyOpen:              "Открыть",
		KeySave:              "Сохранить",
		KeyExit:              "Выход",
		KeySettings:          "Настройки",
		KeyInterfaceLanguage: "Язык интерфейса",

		KeyFieldLanguage:       "Язык",
		KeyFieldWord:           "Слово",
		KeyFieldMeaning:        "Значение",
		KeyLanguagePlaceholder: "напр. EN",
		KeyWordPlaceholder:     "напр. cat",
		KeyMeaningPlaceholder:  "Что означает слово",
		KeyAdd:                 "Добавить",
		KeyUpdate:              "Обновить",
		KeyReset:               "Сбросить",
		KeyEntryCount:          "Записей: %d",

		KeyInputError:      "Ошибка ввода",
		KeyFieldsBlank:     "Поля не могут быть пустыми. Заполните все поля перед добавлением.",
		KeyFieldsComma:     "Поля не могут содержать запятые.",
		KeyDuplicateTitle:  "Уже в списке",
		KeyDuplicateWord:   "Слово %q уже есть в списке.",
		KeyEntryStored:     "Сохранено: %s",
		KeyNewList:         "Начат новый список",
		KeySuccess:         "Успех",
		KeySaveSuccessful:  "Данные успешно сохранены.",
		KeyCanceled:        "Отменено",
		KeyOpenCanceled:    "Открытие отменено. Файл не выбран.",
		KeySaveCanceled:    "Сохранение отменено. Файл не сохранён.",
		KeyFileNotFound:    "Файл не найден",
		KeyFileNotFoundMsg: "Не удалось найти файл. Проверьте путь.",
		KeyIOError:         "Ошибка ввода-вывода",
		KeyReadError:       "Ошибка при чтении файла. Повторите попытку позже.",
		KeyWriteError:      "Ошибка при сохранении файла. Повторите попытку позже.",
		KeyInvalidData:     "Неверные данные",
		KeyLinesSkipped:    "Некоторые строки не удалось загрузить, они пропущены:",
		KeyLoadAborted:     "Файл не загружен, так как строка неверна:",
		KeyMoreLines:       "...и ещё %d",
		KeyFileLoaded:      "Загружено записей: %d из %s",

		KeyDefaultDirectory: "Папка по умолчанию",
		KeyLoadPolicy:       "Неверные строки при открытии",
		KeyPolicySkip:       "Пропускать и сообщать",
		KeyPolicyAbort:      "Отклонять весь файл",
		KeyBrowse:           "Обзор",
		KeyCancel:           "Отмена",
		KeySettingsSaved:    "Настройки успешно сохранены!",
	}

	// Portuguese texts
	l.texts["pt"] = map[string]string{
		KeyAppTitle:          "LangLearn",
		KeyFile:              "Arquivo",
		KeyNew:               "Novo",
		KeyOpen:              "Abrir",
		KeySave:              "Salvar",
		KeyExit:              "Sair",
		KeySettings:          "Configurações",
		KeyInterfaceLanguage: "Idioma da Interface",

		KeyFieldLanguage:       "Idioma",
		KeyFieldWord:           "Palavra",
		KeyFieldMeaning:        "Significado",
		KeyLanguagePlaceholder: "ex. EN",
		KeyWordPlaceholder:     "ex. cat",
		KeyMeaningPlaceholder:  "O que a palavra significa",
		KeyAdd:                 "Adicionar",
		KeyUpdate:              "Atualizar",
		KeyReset:               "Limpar",
		KeyEntryCount:          "%d entradas",

		KeyInputError:      "Erro de Entrada",
		KeyFieldsBlank:     "Os campos não podem ficar vazios. Preencha todos os campos antes de adicionar.",
		KeyFieldsComma:     "Os campos não podem conter vírgulas.",
		KeyDuplicateTitle:  "Já está na lista",
		KeyDuplicateWord:   "A palavra %q já está na lista.",
		KeyEntryStored:     "Salvo %s",
		KeyNewList:         "Nova lista iniciada",
		KeySuccess:         "Sucesso",
		KeySaveSuccessful:  "Os dados foram salvos com sucesso.",
		KeyCanceled:        "Cancelado",
		KeyOpenCanceled:    "Abertura cancelada. Nenhum arquivo selecionado.",
		KeySaveCanceled:    "Salvamento cancelado. Nenhum arquivo salvo.",
		KeyFileNotFound:    "Arquivo Não Encontrado",
		KeyFileNotFoundMsg: "O arquivo não foi encontrado. Verifique o caminho.",
		KeyIOError:         "Erro de E/S",
		KeyReadError:       "Ocorreu um erro ao ler o arquivo. Tente novamente mais tarde.",
		KeyWriteError:      "Ocorreu um erro ao salvar o arquivo. Tente novamente mais tarde.",
		KeyInvalidData:     "Dados inválidos",
		KeyLinesSkipped:    "Algumas linhas não puderam ser carregadas e foram ignoradas:",
		KeyLoadAborted:     "O arquivo não foi carregado porque uma linha é inválida:",
		KeyMoreLines:       "...e mais %d",
		KeyFileLoaded:      "%d entradas carregadas de %s",

		KeyDefaultDirectory: "Diretório Padrão",
		KeyLoadPolicy:       "Linhas Inválidas ao Abrir",
		KeyPolicySkip:       "Ignorar e informar",
		KeyPolicyAbort:      "Rejeitar o arquivo inteiro",
		KeyBrowse:           "Navegar",
		KeyCancel:           "Cancelar",
		KeySettingsSaved:    "Configurações salvas com sucesso!",
	}
}
