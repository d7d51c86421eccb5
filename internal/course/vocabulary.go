package course

// Word is one vocabulary item introduced by a lesson, with both translations.
type Word struct {
	Kazakh string
	En     string
	Ru     string
}

// Unit tests and review lessons introduce no new words.
var wordsByLesson = map[int][]Word{
	1: {
		{Kazakh: "қазақ тілі", En: "Kazakh language", Ru: "казахский язык"},
		{Kazakh: "сингармонизм", En: "synharmonism", Ru: "сингармонизм"},
	},
	2: {
		{Kazakh: "дауысты", En: "vowels", Ru: "гласные"},
		{Kazakh: "дауыссыз", En: "consonants", Ru: "согласные"},
	},
	3: {
		{Kazakh: "бас", En: "head", Ru: "голова"},
		{Kazakh: "доп", En: "ball", Ru: "мяч"},
		{Kazakh: "қыз", En: "girl", Ru: "девушка"},
		{Kazakh: "кет", En: "go", Ru: "идти"},
		{Kazakh: "көз", En: "eye", Ru: "глаз"},
		{Kazakh: "сәт", En: "moment", Ru: "момент"},
		{Kazakh: "алма", En: "apple", Ru: "яблоко"},
	},
	5: {
		{Kazakh: "Сәлем", En: "Hello (informal)", Ru: "Привет"},
		{Kazakh: "сәлеметсіз бе", En: "Hello (formal)", Ru: "Здравствуйте"},
		{Kazakh: "Сау бол", En: "Goodbye (informal)", Ru: "Пока"},
		{Kazakh: "сау болыңыз", En: "Goodbye (formal)", Ru: "До свидания"},
	},
	6: {
		{Kazakh: "мұғалім", En: "teacher", Ru: "учитель"},
		{Kazakh: "сыныптасы", En: "classmate", Ru: "одноклассник"},
	},
	8: {
		{Kazakh: "мен", En: "I", Ru: "я"},
		{Kazakh: "сен", En: "you (informal)", Ru: "ты"},
		{Kazakh: "оқушы", En: "student", Ru: "ученик"},
	},
	9: {
		{Kazakh: "мың", En: "my ending (e.g. мұғаліммін)", Ru: "окончание «я»"},
		{Kazakh: "сың", En: "your ending (e.g. оқушысың)", Ru: "окончание «ты»"},
	},
}

// WordsForLesson returns the words a lesson introduces. Lessons without new
// vocabulary return an empty slice.
func WordsForLesson(id int) []Word {
	return wordsByLesson[id]
}
