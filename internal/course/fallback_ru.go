package course

import "github.com/oyanquantum/oyan/internal/models"

func fallbackRussian(id int) models.GeneratedLessonContent {
	switch id {
	case 1:
		return models.GeneratedLessonContent{
			Title: "Гармония гласных",
			ExplanationSlides: []string{
				"Казахский — тюркский язык, на котором говорят в Казахстане. Одна из главных черт — сингармонизм: гласные в слове «согласуются» друг с другом, как ноты в мелодии.",
				"Представьте язык как музыку: мягкие гласные с мягкими, твёрдые с твёрдыми. Так слова звучат ровно и последовательно.",
			},
			Examples: []string{},
			Quiz: []models.QuizItem{
				{Question: "Достық  -  [Dostyq]", Options: []string{"Слышите? И первая гласная (дОс), и вторая (тЫк) звучат твёрдо."}, CorrectIndex: 0, Points: 0},
				{Question: "Твёрдые гласные в слове обычно с ...", Options: []string{"Только одна гласная", "Без других гласных", "Мягкими гласными", "Другими твёрдыми гласными"}, CorrectIndex: 3, Points: 1},
				{Question: "Какий слог звучит мягко?", Options: []string{"Кә - [Kä]", "Бо - [Bo]", "Сы - [Sı]", "Да - [Da]"}, CorrectIndex: 0, Points: 1},
				{Question: "Соедини по звуку", Options: []string{"Жү", "Мы", "сық", "рек"}, CorrectIndex: 0, Points: 2},
			},
		}
	case 2:
		return models.GeneratedLessonContent{
			Title: "Звуки в казахском",
			ExplanationSlides: []string{
				"В казахском есть гласные и согласные. Гласные бывают твёрдыми (задние) и мягкими (передние).",
				"Твёрдые гласные: А  [A],  О  [O],  У  [W],  Ұ [ U],  Ы  [I] \n\nМягкие гласные: Ә  [Ä],  Е  [E],  І  [I],  Ө  [Ö],  Ү  [Ü],  Э  [É]\n\nУниверсальные: И  [I],  У  [W] \n\nТип гласной в слове определяет, какие окончания мы будем использовать.",
			},
			Examples: []string{"Твёрдые: а, о, у, ұ, ы", "Мягкие: ә, е, і, ө, ү"},
			Quiz: []models.QuizItem{
				{Question: "Какая гласная твёрдая (задняя) в казахском?", Options: []string{"ы", "і", "ө", "ү"}, CorrectIndex: 0},
				{Question: "Какая гласная мягкая (передняя)?", Options: []string{"а", "о", "ө", "ұ"}, CorrectIndex: 2},
				{Question: "Твёрдые гласные в казахском — это:", Options: []string{"а, о, у, ұ, ы", "ә, е, і, ө, ү", "Только ы", "Только а"}, CorrectIndex: 0},
				{Question: "Мягкие (передние) гласные — это:", Options: []string{"ә, е, і, ө, ү", "а, о, у", "ы, ұ", "Нет таких"}, CorrectIndex: 0},
				{Question: "Гласная ұ — это:", Options: []string{"Твёрдая (задняя)", "Мягкая (передняя)", "Ни то ни другое", "Обе"}, CorrectIndex: 0},
				{Question: "Гласная и — это:", Options: []string{"Мягкая (передняя)", "Твёрдая (задняя)", "Согласная", "Обе"}, CorrectIndex: 3},
				{Question: "Что определяет окончания в казахском?", Options: []string{"Тип гласной", "Длина слова", "Только первая буква", "Ничего"}, CorrectIndex: 0},
				{Question: "Какая буква — мягкая гласная?", Options: []string{"ү", "ы", "ұ", "а"}, CorrectIndex: 0},
			},
		}
	case 3:
		return models.GeneratedLessonContent{
			Title: "Сингармонизм 1",
			ExplanationSlides: []string{
				"Первый закон: мягкая гласная создаёт мягкий слог, твёрдая — твёрдый.\n\nПоэтому в одном слове обычно только твёрдые или только мягкие гласные.",
				"Потренируйтесь:\n\nБас - [bas]\nҚыз - [qiz]\nКет - [ket]\nКөз - [köz]\n\nПостарайтесь определить, какие из них мягкие, а какие твёрдые.",
			},
			Examples: []string{},
			Quiz: []models.QuizItem{
				{Question: "В слове көз гласная:", Options: []string{"Мягкая (передняя)", "Твёрдая (задняя)", "Ни то ни другое", "Обе"}, CorrectIndex: 0},
				{Question: "В каком слове твёрдые гласные?", Options: []string{"доп", "кет", "сәт", "көз"}, CorrectIndex: 0},
				{Question: "В каком слове мягкие гласные?", Options: []string{"қыз", "бас", "доп", "Ни в одном"}, CorrectIndex: 3},
				{Question: "бас имеет гласные:", Options: []string{"Твёрдые", "Мягкие", "Нет", "Смешанные"}, CorrectIndex: 0},
				{Question: "кет имеет гласные:", Options: []string{"Мягкие", "Твёрдые", "Нет", "Смешанные"}, CorrectIndex: 0},
				{Question: "В одном слове обычно:", Options: []string{"Только твёрдые или только мягкие гласные", "Всегда смешанные", "Одна гласная", "Нет гласных"}, CorrectIndex: 0},
				{Question: "қыз — какие гласные?", Options: []string{"Мягкие", "Твёрдые", "Ни те ни другие", "Оба типа"}, CorrectIndex: 0},
			},
		}
	case 4:
		return models.GeneratedLessonContent{
			Title: "Тест. Блок 1",
			ExplanationSlides: []string{
				"Этот тест проверяет блок 1:\n\nказахский язык,\n\nсингармонизм,\n\nзвуки,\n\nи первый закон (бас, доп, қыз, кет, көз, сәт).",
			},
			Examples: []string{},
			Quiz: []models.QuizItem{
				{Question: "Сингармонизм в казахском значит:", Options: []string{"Гласные в слове согласуются", "В слове одна гласная", "Нет гласных", "Согласуются согласные"}, CorrectIndex: 0},
				{Question: "В каком слове мягкие гласные?", Options: []string{"бас", "доп", "қыз", "Нет"}, CorrectIndex: 3},
				{Question: "Твёрдые гласные в казахском:", Options: []string{"а, о, у, ы", "і, ө, ү", "е, э", "ю, я"}, CorrectIndex: 0},
				{Question: "Б_ркіт - [B_rkit]\nКакая гласная звучит лучше?", Options: []string{"е", "ү", "ұ", "ө"}, CorrectIndex: 2},
				{Question: "В каком слове твёрдые гласные?", Options: []string{"доп", "кет", "көз", "сәт"}, CorrectIndex: 0},
				{Question: "Первый закон: мягкая гласная создаёт ___ слог.", Options: []string{"Мягкий", "Твёрдый", "Нет", "Смешанный"}, CorrectIndex: 0},
				{Question: "Казахский — ___ язык.", Options: []string{"Тюркский", "Славянский", "Романский", "Германский"}, CorrectIndex: 0},
				{Question: "Кіт_п - [Kit_p]\nКакая гласная звучит лучше?", Options: []string{"а", "ү", "е", "э"}, CorrectIndex: 0},
				{Question: "көз имеет гласные:", Options: []string{"Мягкие", "Твёрдые", "Нет", "Смешанные"}, CorrectIndex: 0},
				{Question: "Мягкие гласные — это:", Options: []string{"ә, е, і, ө, ү", "а, о, у, ы", "Только ы", "Только а"}, CorrectIndex: 0},
				{Question: "Сингармонизм сравнивают с:", Options: []string{"Музыкой", "Математикой", "Цветами", "Числами"}, CorrectIndex: 0},
				{Question: "Соедини по звуку", Options: []string{"Мы", "Тү", "йе", "сық"}, CorrectIndex: 0, Points: 2},
				{Question: "Соедини по звуку", Options: []string{"Ал", "Сә", "мұрт", "біз"}, CorrectIndex: 0, Points: 2},
			},
		}
	case 5:
		return models.GeneratedLessonContent{
			Title: "Приветствие и прощание",
			ExplanationSlides: []string{
				"Приветствие: Сәлем (неформально, «привет») или Сәлеметсіз бе (формально, «здравствуйте»). Послушайте, как они звучат.",
				"Прощание: Сау бол (неформально) или Сау болыңыз (формально). Окончание -ыңыз делает форму вежливой.",
				"С учителями и старшими — формальные формы. С друзьями и одноклассниками можно Сәлем и Сау бол.",
			},
			Examples: []string{"Сәлем — привет", "Сәлеметсіз бе — здравствуйте (формально)", "Сау бол — пока", "Сау болыңыз — до свидания (формально)"},
			Quiz: []models.QuizItem{
				{Question: "Сәлем  -  [Sälem]", Options: []string{"Слышите? Неформальное приветствие, как «привет»."}, CorrectIndex: 0, Points: 0, Type: models.QuizItemTypeListening, AudioText: "Сәлем"},
				{Question: "Как сказать «здравствуйте» формально?", Options: []string{"Сәлеметсіз бе", "Сәлем", "Сау бол", "Сау болыңыз"}, CorrectIndex: 0, Points: 1},
				{Question: "Сау болыңыз значит:", Options: []string{"Здравствуйте", "До свидания (формально)", "Спасибо", "Пожалуйста"}, CorrectIndex: 1, Points: 1},
				{Question: "Сәлем используют для:", Options: []string{"Неформального приветствия", "Формального приветствия", "Прощания", "Благодарности"}, CorrectIndex: 0, Points: 1},
				{Question: "Как попрощаться неформально?", Options: []string{"Сау бол", "Сау болыңыз", "Сәлем", "Сәлеметсіз бе"}, CorrectIndex: 0, Points: 1},
				{Question: "С учителем нужно:", Options: []string{"Формальные формы (Сәлеметсіз бе, Сау болыңыз)", "Только Сәлем", "Только Сау бол", "Без приветствия"}, CorrectIndex: 0, Points: 1},
				{Question: "Сәлеметсіз бе — это:", Options: []string{"Формальное приветствие", "Неформальное прощание", "Спасибо", "Пожалуйста"}, CorrectIndex: 0, Points: 1},
				{Question: "Сау бол — это:", Options: []string{"Неформальное прощание", "Формальное приветствие", "Формальное прощание", "Неформальное приветствие"}, CorrectIndex: 0, Points: 1},
				{Question: "Какая фраза формальная?", Options: []string{"Сау болыңыз", "Сау бол", "Сәлем", "Нет"}, CorrectIndex: 0, Points: 1},
				{Question: "Формальные формы используют с:", Options: []string{"Учителями и старшими", "Только с друзьями", "Ни с кем", "Только на письме"}, CorrectIndex: 0, Points: 1},
			},
		}
	case 6:
		return models.GeneratedLessonContent{
			Title: "Первые слова: учёба",
			ExplanationSlides: []string{
				"Полезные слова: мұғалім (учитель), сыныптасы (одноклассник). Послушайте, как они звучат.",
				"Учителю — Сәлеметсіз бе. Однокласснику можно Сәлем.",
				"Всё просто: учитель → формально. Одноклассник → неформально.",
			},
			Examples: []string{"мұғалім — учитель", "сыныптасы — одноклассник", "Учителю: Сәлеметсіз бе", "Однокласснику: Сәлем"},
			Quiz: []models.QuizItem{
				{Question: "мұғалім  -  [Muğalim]", Options: []string{"Слышите? Это «учитель» по-казахски."}, CorrectIndex: 0, Points: 0, Type: models.QuizItemTypeListening, AudioText: "мұғалім"},
				{Question: "Что значит мұғалім?", Options: []string{"Учитель", "Ученик", "Школа", "Книга"}, CorrectIndex: 0, Points: 1},
				{Question: "С кем говорят Сәлеметсіз бе?", Options: []string{"С учителем", "Только с другом", "Ни с кем", "Только на письме"}, CorrectIndex: 0, Points: 1},
				{Question: "сыныптасы значит:", Options: []string{"Одноклассник", "Учитель", "Класс", "Урок"}, CorrectIndex: 0, Points: 1},
				{Question: "Учителю говорят:", Options: []string{"Сәлеметсіз бе", "Сәлем", "Сау бол", "Сау болыңыз"}, CorrectIndex: 0, Points: 1},
				{Question: "Однокласснику можно сказать:", Options: []string{"Сәлем", "Только Сәлеметсіз бе", "Ничего", "Сау болыңыз"}, CorrectIndex: 0, Points: 1},
				{Question: "мұғалім — это слово:", Options: []string{"Казахское для «учитель»", "Казахское для «ученик»", "Приветствие", "Прощание"}, CorrectIndex: 0, Points: 1},
				{Question: "сыныптасы — это:", Options: []string{"Одноклассник", "Учитель", "Школа", "Книга"}, CorrectIndex: 0, Points: 1},
				{Question: "Какое слово значит «учитель»?", Options: []string{"мұғалім", "сыныптасы", "Сәлем", "Сау бол"}, CorrectIndex: 0, Points: 1},
				{Question: "Какое слово значит «одноклассник»?", Options: []string{"сыныптасы", "мұғалім", "оқушы", "Сәлеметсіз бе"}, CorrectIndex: 0, Points: 1},
			},
		}
	case 7:
		return models.GeneratedLessonContent{
			Title: "Тест. Блок 2",
			ExplanationSlides: []string{
				"Этот тест проверяет блок 2:\n\nприветствия и прощания,\n\nсловарь (мұғалім, сыныптасы),\n\nкогда Сәлем и Сәлеметсіз бе.",
			},
			Examples: []string{},
			Quiz: []models.QuizItem{
				{Question: "Правильное формальное прощание:", Options: []string{"Сау болыңыз", "Сәлем", "Сау бол", "Сәлеметсіз бе"}, CorrectIndex: 0, Points: 1},
				{Question: "Сәлеметсіз бе говорят:", Options: []string{"Учителю", "Близкому другу", "Никому", "Только утром"}, CorrectIndex: 0, Points: 1},
				{Question: "мұғалім — это:", Options: []string{"Учитель", "Одноклассник", "Ученик", "Школа"}, CorrectIndex: 0, Points: 1},
				{Question: "сыныптасы значит:", Options: []string{"Одноклассник", "Учитель", "Школа", "Книга"}, CorrectIndex: 0, Points: 1},
				{Question: "Неформальное приветствие:", Options: []string{"Сәлем", "Сәлеметсіз бе", "Сау болыңыз", "Нет"}, CorrectIndex: 0, Points: 1},
				{Question: "Формальное приветствие:", Options: []string{"Сәлеметсіз бе", "Сәлем", "Сау бол", "Сау болыңыз"}, CorrectIndex: 0, Points: 1},
				{Question: "С учителем используют:", Options: []string{"Сәлеметсіз бе (привет), Сау болыңыз (прощание)", "Только Сәлем", "Только Сау бол", "Без приветствия"}, CorrectIndex: 0, Points: 1},
				{Question: "Сау бол — это:", Options: []string{"Неформальное прощание", "Формальное приветствие", "Учитель", "Одноклассник"}, CorrectIndex: 0, Points: 1},
				{Question: "Кто из перечисленного — человек (словарь)?", Options: []string{"мұғалім", "Сәлем", "Сау бол", "Сәлеметсіз бе"}, CorrectIndex: 0, Points: 1},
				{Question: "Однокласснику говорят:", Options: []string{"Сәлем", "Только Сәлеметсіз бе", "Только Сау болыңыз", "Ничего"}, CorrectIndex: 0, Points: 1},
			},
		}
	case 8:
		return models.GeneratedLessonContent{
			Title: "Я и ты + словарь",
			ExplanationSlides: []string{
				"мен = я, сен = ты (неформально). С ними используются личные окончания: «я — ...», «ты — ...».",
				"Новое слово: оқушы (ученик). Послушайте. Позже: Мен оқушы + мын = Мен оқушымын (я ученик).",
				"Как в блоке 1 с гласными: каждый шаг опирается на предыдущий. От приветствий к полным предложениям.",
			},
			Examples: []string{"мен — я", "сен — ты (неформально)", "оқушы — ученик"},
			Quiz: []models.QuizItem{
				{Question: "оқушы  -  [Oqushy]", Options: []string{"Слышите? Это «ученик» по-казахски."}, CorrectIndex: 0, Points: 0, Type: models.QuizItemTypeListening, AudioText: "оқушы"},
				{Question: "Что значит мен?", Options: []string{"Я", "Ты", "Он", "Мы"}, CorrectIndex: 0, Points: 1},
				{Question: "сен — это:", Options: []string{"Ты (неформально)", "Я", "Учитель", "Ученик"}, CorrectIndex: 0, Points: 1},
				{Question: "оқушы значит:", Options: []string{"Ученик", "Учитель", "Школа", "Книга"}, CorrectIndex: 0, Points: 1},
				{Question: "мен — местоимение для:", Options: []string{"Я", "Ты", "Он", "Они"}, CorrectIndex: 0, Points: 1},
				{Question: "сен — местоимение для:", Options: []string{"Ты (неформально)", "Я", "Мы", "Она"}, CorrectIndex: 0, Points: 1},
				{Question: "Личные окончания добавляют, чтобы сказать:", Options: []string{"Я — ... / Ты — ...", "Привет / Пока", "Спасибо", "Ничего"}, CorrectIndex: 0, Points: 1},
				{Question: "оқушы — это:", Options: []string{"Ученик", "Учитель", "Одноклассник", "Школа"}, CorrectIndex: 0, Points: 1},
				{Question: "Какое слово значит «я»?", Options: []string{"мен", "сен", "оқушы", "мұғалім"}, CorrectIndex: 0, Points: 1},
				{Question: "Мен оқушымын значит (в следующем уроке):", Options: []string{"Я ученик", "Ты ученик", "Я учитель", "Ты учитель"}, CorrectIndex: 0, Points: 1},
			},
		}
	case 9:
		return models.GeneratedLessonContent{
			Title: "Личные окончания",
			ExplanationSlides: []string{
				"С мен (я): -мың, -мін, -бын, -бін, -пын, -пін. С сен (ты): -сың, -сің.",
				"Окончания добавляются к существительным, профессиям, прилагательным. мұғалім + мін = Мен мұғаліммін. оқушы + сың = Сен оқушысың.",
				"Как сингармонизм: окончание зависит от гласной. Передняя гласная → -мін, -сің. Задняя → -мың, -сың.",
			},
			Examples: []string{"Мен мұғаліммін — я учитель", "Сен оқушысың — ты ученик", "Окончания: -мың/-мін (я), -сың/-сің (ты)"},
			Quiz: []models.QuizItem{
				{Question: "Мен мұғаліммін  -  [Men muğalimmin]", Options: []string{"Слышите? «Я учитель»."}, CorrectIndex: 0, Points: 0, Type: models.QuizItemTypeListening, AudioText: "Мен мұғаліммін"},
				{Question: "Какое окончание с сен (ты)?", Options: []string{"-сың / -сің", "-мың / -мін", "-бын", "-пын"}, CorrectIndex: 0, Points: 1},
				{Question: "Мен мұғаліммін значит:", Options: []string{"Я учитель", "Ты учитель", "Он учитель", "Мы учителя"}, CorrectIndex: 0, Points: 1},
				{Question: "Личные окончания добавляют к:", Options: []string{"Именам, профессиям, существительным", "Только глаголам", "Только числам", "Ни к чему"}, CorrectIndex: 0, Points: 1},
				{Question: "Какое окончание с мен (я)?", Options: []string{"-мың / -мін (и -бын, -пін и т.д.)", "Только -сың / -сің", "Без окончания", "Только -бын"}, CorrectIndex: 0, Points: 1},
				{Question: "Сен оқушысың значит:", Options: []string{"Ты ученик", "Я ученик", "Он ученик", "Мы ученики"}, CorrectIndex: 0, Points: 1},
				{Question: "мұғалім + мін (с мен) =", Options: []string{"Мен мұғаліммін", "Сен мұғалімсің", "Мен оқушымын", "Сен оқушысың"}, CorrectIndex: 0, Points: 1},
				{Question: "Окончания -сың, -сің с:", Options: []string{"сен (ты)", "мен (я)", "оқушы", "мұғалім"}, CorrectIndex: 0, Points: 1},
				{Question: "«Я учитель» по-казахски:", Options: []string{"Мен мұғаліммін", "Сен мұғалімсің", "Мен оқушымын", "Сен оқушысың"}, CorrectIndex: 0, Points: 1},
				{Question: "«Ты ученик» по-казахски:", Options: []string{"Сен оқушысың", "Мен оқушымын", "Мен мұғаліммін", "Сен мұғалімсің"}, CorrectIndex: 0, Points: 1},
			},
		}
	case 10:
		return models.GeneratedLessonContent{
			Title: "Употребление: Мен мұғаліммін, сен оқушысың",
			ExplanationSlides: []string{
				"Вместе: Мен мұғаліммін (я учитель), Сен оқушысың (ты ученик).",
				"Окончание зависит от последней гласной: после задних -мың, -сың; после передних -мін, -сің.",
				"Потренируйтесь произносить оба. Теперь у вас основа: я есть / ты есть + профессия или существительное.",
			},
			Examples: []string{"Мен мұғаліммін — я учитель", "Сен оқушысың — ты ученик"},
			Quiz: []models.QuizItem{
				{Question: "Сен оқушысың  -  [Sen oqushysyñ]", Options: []string{"Слышите? «Ты ученик»."}, CorrectIndex: 0, Points: 0, Type: models.QuizItemTypeListening, AudioText: "Сен оқушысың"},
				{Question: "Сен оқушысың значит:", Options: []string{"Ты ученик", "Я ученик", "Он ученик", "Мы ученики"}, CorrectIndex: 0, Points: 1},
				{Question: "Как сказать «я учитель» по-казахски?", Options: []string{"Мен мұғаліммін", "Сен мұғалімсің", "Мен оқушымын", "Сен оқушысың"}, CorrectIndex: 0, Points: 1},
				{Question: "Мен мұғаліммін — это:", Options: []string{"Я учитель", "Ты учитель", "Я ученик", "Ты ученик"}, CorrectIndex: 0, Points: 1},
				{Question: "Сен оқушысың — это:", Options: []string{"Ты ученик", "Я ученик", "Я учитель", "Ты учитель"}, CorrectIndex: 0, Points: 1},
				{Question: "Окончание -мін в мұғаліммін с:", Options: []string{"мен (я)", "сен (ты)", "оқушы", "сыныптасы"}, CorrectIndex: 0, Points: 1},
				{Question: "Окончание -сың в оқушысың с:", Options: []string{"сен (ты)", "мен (я)", "мұғалім", "только оқушы"}, CorrectIndex: 0, Points: 1},
				{Question: "Какое предложение значит «Ты ученик»?", Options: []string{"Сен оқушысың", "Мен оқушымын", "Мен мұғаліммін", "Сен мұғалімсің"}, CorrectIndex: 0, Points: 1},
				{Question: "мұғаліммін — окончание для:", Options: []string{"Я (мен)", "Ты (сен)", "Он", "Мы"}, CorrectIndex: 0, Points: 1},
				{Question: "оқушысың — окончание для:", Options: []string{"Ты (сен)", "Я (мен)", "Учитель", "Ученик"}, CorrectIndex: 0, Points: 1},
			},
		}
	case 11:
		return models.GeneratedLessonContent{
			Title: "Тест. Блок 3",
			ExplanationSlides: []string{
				"Этот тест проверяет блок 3:\n\nмен и сен,\n\nоқушы,\n\nличные окончания (-мың/-мін, -сың/-сің),\n\nпредложения Мен мұғаліммін, Сен оқушысың.",
			},
			Examples: []string{},
			Quiz: []models.QuizItem{
				{Question: "Мен мұғаліммін значит:", Options: []string{"Я учитель", "Ты учитель", "Я ученик", "Ты ученик"}, CorrectIndex: 0, Points: 1},
				{Question: "С каким местоимением окончание -сың/-сің?", Options: []string{"сен (ты)", "мен (я)", "оқушы", "мұғалім"}, CorrectIndex: 0, Points: 1},
				{Question: "Правильно по-казахски «Ты ученик»:", Options: []string{"Сен оқушысың", "Мен оқушымын", "Сен мұғалімсің", "Мен мұғаліммін"}, CorrectIndex: 0, Points: 1},
				{Question: "мен значит:", Options: []string{"Я", "Ты", "Ученик", "Учитель"}, CorrectIndex: 0, Points: 1},
				{Question: "сен значит:", Options: []string{"Ты (неформально)", "Я", "Он", "Мы"}, CorrectIndex: 0, Points: 1},
				{Question: "оқушы значит:", Options: []string{"Ученик", "Учитель", "Одноклассник", "Школа"}, CorrectIndex: 0, Points: 1},
				{Question: "Какое окончание с мен?", Options: []string{"-мың / -мін", "-сың / -сің", "Без окончания", "Только -сың"}, CorrectIndex: 0, Points: 1},
				{Question: "Сен оқушысың по-русски:", Options: []string{"Ты ученик", "Я ученик", "Я учитель", "Ты учитель"}, CorrectIndex: 0, Points: 1},
				{Question: "Мен оқушымын значит:", Options: []string{"Я ученик", "Ты ученик", "Я учитель", "Ты учитель"}, CorrectIndex: 0, Points: 1},
				{Question: "Личные окончания присоединяются к:", Options: []string{"Существительным, профессиям (напр. мұғалім, оқушы)", "Только глаголам", "Только приветствиям", "Ни к чему"}, CorrectIndex: 0, Points: 1},
			},
		}
	default:
		return fallbackEnglish(1)
	}
}
