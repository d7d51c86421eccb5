package course

import "github.com/oyanquantum/oyan/internal/models"

// FallbackContent returns the bundled lesson content for a node, used whenever
// generation is unavailable. lang selects the narration language ("ru" for
// Russian, anything else for English). The returned content always satisfies
// the quiz shape the client expects, so callers can serve it as-is.
func FallbackContent(id int, lang string) models.GeneratedLessonContent {
	if lang == "ru" {
		return fallbackRussian(id)
	}
	return fallbackEnglish(id)
}

func fallbackEnglish(id int) models.GeneratedLessonContent {
	switch id {
	case 1:
		return models.GeneratedLessonContent{
			Title: "Vowel Harmony",
			ExplanationSlides: []string{
				"Kazakh is a Turkic language spoken in Kazakhstan. One of its key features is synharmonism: vowels in a word 'agree' with each other - like notes in a melody.",
				"Think of language as music: soft vowels go together, hard vowels go together. This makes words sound smooth and consistent.",
				"Don't worry! In this lesson you don't need to understand the meaning, you just need to hear the difference between hard and soft sounds.",
			},
			Examples: []string{},
			Quiz: []models.QuizItem{
				{Question: "Достық  -  [Dostyq]", Options: []string{"Do you hear? Both the first vowel (dOs) and the second (tYk) sound hard."}, CorrectIndex: 0, Points: 0},
				{Question: "Hard vowels in a word typically go with ...", Options: []string{"Only one vowel", "No other vowel", "Soft vowels", "Other hard vowels"}, CorrectIndex: 3, Points: 1},
				{Question: "Which syllable sounds soft?", Options: []string{"Кә - [Kä]", "Бо - [Bo]", "Сы - [Sı]", "Да - [Da]"}, CorrectIndex: 0, Points: 1},
				{Question: "Connect by sound", Options: []string{"Жү", "Мы", "сық", "рек"}, CorrectIndex: 0, Points: 2},
			},
		}
	case 2:
		return models.GeneratedLessonContent{
			Title: "Sounds in Kazakh",
			ExplanationSlides: []string{
				"Kazakh has vowels and consonants. Vowels can be hard (back) or soft (front).",
				"Hard vowels: А  [A],  О  [O],  У  [W],  Ұ [ U],  Ы  [I] \n\nSoft vowels: Ә  [Ä],  Е  [E],  І  [I],  Ө  [Ö],  Ү  [Ü],  Э  [É]\n\nUniversal: И  [I],  У  [W] \n\nThe type of vowel in a word determines which endings we use later.",
			},
			Examples: []string{"Hard: а, о, у, ұ, ы", "Soft: ә, е, і, ө, ү"},
			Quiz: []models.QuizItem{
				{Question: "Which is a hard (back) vowel in Kazakh?", Options: []string{"ы", "і", "ө", "ү"}, CorrectIndex: 0},
				{Question: "Which is a soft (front) vowel?", Options: []string{"а", "о", "ө", "ұ"}, CorrectIndex: 2},
				{Question: "Hard vowels in Kazakh include:", Options: []string{"а, о, у, ұ, ы", "ә, е, і, ө, ү", "Only ы", "Only а"}, CorrectIndex: 0},
				{Question: "Soft (front) vowels include:", Options: []string{"ә, е, і, ө, ү", "а, о, у", "ы, ұ", "None"}, CorrectIndex: 0},
				{Question: "The vowel ұ is:", Options: []string{"Hard (back)", "Soft (front)", "Neither", "Both"}, CorrectIndex: 0},
				{Question: "The vowel и is:", Options: []string{"Soft (front)", "Hard (back)", "Consonant", "Both"}, CorrectIndex: 3},
				{Question: "What determines which endings we use in Kazakh?", Options: []string{"The type of vowel", "Word length", "First letter only", "Nothing"}, CorrectIndex: 0},
				{Question: "Which letter is a soft vowel?", Options: []string{"ү", "ы", "ұ", "а"}, CorrectIndex: 0},
			},
		}
	case 3:
		return models.GeneratedLessonContent{
			Title: "Synharmonism 1",
			ExplanationSlides: []string{
				"First law: a soft vowel creates a soft syllable; a hard vowel creates a hard syllable.\n\nSo one word usually has only hard vowels or only soft vowels.",
				"Practice these words:\n\nБас - [bas]\nҚыз - [qiz]\nКет - [ket]\nКөз - [köz]\n\nTry to determine which of them are soft and which are hard.",
			},
			Examples: []string{},
			Quiz: []models.QuizItem{
				{Question: "In the word көз, the vowel is:", Options: []string{"Soft (front)", "Hard (back)", "Neither", "Both"}, CorrectIndex: 0},
				{Question: "Which word has hard vowels?", Options: []string{"доп", "кет", "сәт", "көз"}, CorrectIndex: 0},
				{Question: "Which word has soft vowels?", Options: []string{"қыз", "бас", "доп", "None of these"}, CorrectIndex: 3},
				{Question: "бас has ___ vowels.", Options: []string{"Hard", "Soft", "No", "Mixed"}, CorrectIndex: 0},
				{Question: "кет has ___ vowels.", Options: []string{"Soft", "Hard", "No", "Mixed"}, CorrectIndex: 0},
				{Question: "One word usually has:", Options: []string{"Only hard or only soft vowels", "Mixed vowels always", "One vowel only", "No vowels"}, CorrectIndex: 0},
				{Question: "қыз uses which type of vowels?", Options: []string{"Soft", "Hard", "Neither", "Both"}, CorrectIndex: 0},
			},
		}
	case 4:
		return models.GeneratedLessonContent{
			Title: "Unit 1 Test",
			ExplanationSlides: []string{
				"This test checks what you learned in Unit 1:\n\nthe Kazakh language,\n\nsynharmonism,\n\nsounds,\n\nand the first law with words like бас, доп, қыз, кет, көз, сәт.",
			},
			Examples: []string{},
			Quiz: []models.QuizItem{
				{Question: "Synharmonism in Kazakh means:", Options: []string{"Vowels in a word agree", "Only one vowel per word", "No vowels", "Only consonants agree"}, CorrectIndex: 0},
				{Question: "Which word has soft vowels?", Options: []string{"бас", "доп", "қыз", "None"}, CorrectIndex: 3},
				{Question: "Hard vowels in Kazakh include:", Options: []string{"а, о, у, ы", "і, ө, ү", "е, э", "ю, я"}, CorrectIndex: 0},
				{Question: "Б_ркіт - [B_rkit]\nWhich vowel sounds better?", Options: []string{"е", "ү", "ұ", "ө"}, CorrectIndex: 2},
				{Question: "Which word has hard vowels?", Options: []string{"доп", "кет", "көз", "сәт"}, CorrectIndex: 0},
				{Question: "The first law says: soft vowel creates ___ syllable.", Options: []string{"Soft", "Hard", "No", "Mixed"}, CorrectIndex: 0},
				{Question: "Kazakh is a ___ language.", Options: []string{"Turkic", "Slavic", "Romance", "Germanic"}, CorrectIndex: 0},
				{Question: "Кіт_п - [Kit_p]\nWhich vowel sounds better?", Options: []string{"а", "ү", "е", "э"}, CorrectIndex: 0},
				{Question: "көз has ___ vowels.", Options: []string{"Soft", "Hard", "No", "Mixed"}, CorrectIndex: 0},
				{Question: "Soft vowels include:", Options: []string{"ә, е, і, ө, ү", "а, о, у, ы", "Only ы", "Only а"}, CorrectIndex: 0},
				{Question: "Synharmonism is compared to:", Options: []string{"Music", "Math", "Colours", "Numbers"}, CorrectIndex: 0},
				{Question: "Connect by sound", Options: []string{"Мы", "Тү", "йе", "сық"}, CorrectIndex: 0, Points: 2},
				{Question: "Connect by sound", Options: []string{"Ал", "Сә", "мұрт", "біз"}, CorrectIndex: 0, Points: 2},
			},
		}
	case 5:
		return models.GeneratedLessonContent{
			Title: "Greetings",
			ExplanationSlides: []string{
				"**Сәлем** is a casual greeting, like \"Hi\" or \"Hello\". Use it with friends and family.\n\nIt's important to choose the right greeting in Kazakh to show respect. We'll learn formal and informal ways to say hello.",
				"**Сәлеметсіз бе** is a formal greeting. Use it with elders, teachers, or people you don't know well. It means \"Hello\" but shows respect.\n\nThink of it like \"Good morning/afternoon/evening\" in English. It's always a safe and polite choice.",
				"**Сау бол** means \"Goodbye\" in a casual way. Use it with friends and family when you're leaving.\n\nIt's similar to saying \"Bye\" or \"See you later\" in English. Keep it casual!",
				"**Сау болыңыз** is the formal way to say \"Goodbye\". Use it with elders, teachers, or people you want to show respect to.\n\nIt's like saying \"Goodbye\" in a more polite way. Remember to use it in formal situations.",
			},
			Examples: []string{"Сәлем! — Hi!", "Сәлеметсіз бе? — Hello! (formal)", "Сау бол! — Goodbye! (informal)", "Сау болыңыз! — Goodbye! (formal)", "Сәлем, Әлия! — Hi, Aliya!", "Сәлеметсіз бе, апай? — Hello, teacher! (formal)"},
			Quiz: []models.QuizItem{
				{Question: "Listen and choose the correct greeting.", Options: []string{"Сәлем", "Сау бол", "Сәлеметсіз бе", "Сау болыңыз"}, CorrectIndex: 0, Points: 1, Type: models.QuizItemTypeListening, AudioText: "Сәлем"},
				{Question: "Choose the formal greeting.", Options: []string{"Сәлем", "Сәлеметсіз бе", "Сау бол", "Hi"}, CorrectIndex: 1, Points: 1},
				{Question: "Which greeting do you use with a friend?", Options: []string{"Сәлеметсіз бе", "Сау болыңыз", "Сәлем", "None of the above"}, CorrectIndex: 2, Points: 1},
				{Question: "Translate: Goodbye! (formal)", Options: []string{"Сәлем!", "Сау бол!", "Сәлеметсіз бе!", "Сау болыңыз!"}, CorrectIndex: 3, Points: 1},
				{Question: "Choose the informal farewell.", Options: []string{"Сау бол", "Сау болыңыз", "Сәлеметсіз бе", "Сәлем"}, CorrectIndex: 0, Points: 1},
				{Question: "Which farewell do you use with a teacher?", Options: []string{"Сау бол", "Сәлем", "Сау болыңыз", "None of the above"}, CorrectIndex: 2, Points: 1},
				{Question: "Translate: Hello! (informal)", Options: []string{"Сәлем!", "Сау бол!", "Сәлеметсіз бе!", "Сау болыңыз!"}, CorrectIndex: 0, Points: 1},
				{Question: "What does Сау бол mean?", Options: []string{"Goodbye! (informal)", "Student", "Teacher", "Hello"}, CorrectIndex: 0, Points: 2, Type: models.QuizItemTypeMultipleChoice},
				{Question: "What does Сәлеметсіз бе mean?", Options: []string{"Hello! (formal)", "Student", "Teacher", "Hello"}, CorrectIndex: 0, Points: 2, Type: models.QuizItemTypeMultipleChoice},
			},
		}
	case 6:
		return models.GeneratedLessonContent{
			Title: "Жаңа сөздер (New Words)",
			ExplanationSlides: []string{
				"Let's learn two new words: **мұғалім** (teacher) and **сыныптасы** (classmate). These are important for talking about school!",
				"**Мұғалім** means 'teacher'. You'll use this word to address your teachers. Remember to be respectful!\n\nUse **Сәлеметсіз бе** when greeting a teacher. It's the polite form of 'hello'.",
				"**Сыныптасы** means 'classmate'. These are the people you study with. It's great to be friendly with your classmates!\n\nUse **Сәлем** when greeting a classmate. It's the informal way to say 'hello'.",
			},
			Examples: []string{"Мұғалім: Сәлеметсіз бе! — Teacher: Hello!", "Сыныптасы: Сәлем! — Classmate: Hi!"},
			Quiz: []models.QuizItem{
				{Question: "Мұғалім is...", Options: []string{"Teacher", "Student", "Friend"}, CorrectIndex: 0, Points: 1, Type: "mcq"},
				{Question: "Сыныптасы is...", Options: []string{"Classmate", "Teacher", "Principal"}, CorrectIndex: 0, Points: 1, Type: "mcq"},
				{Question: "How do you greet a teacher?", Options: []string{"Сәлеметсіз бе", "Сәлем", "Сау бол"}, CorrectIndex: 0, Points: 1, Type: "mcq"},
				{Question: "How do you greet a classmate?", Options: []string{"Сәлем", "Сәлеметсіз бе", "Көріскенше"}, CorrectIndex: 0, Points: 1, Type: "mcq"},
				{Question: "What does Мұғалім mean?", Options: []string{"Teacher", "Classmate", "Student", "Hello"}, CorrectIndex: 0, Points: 2, Type: models.QuizItemTypeMultipleChoice},
				{Question: "Choose the correct translation: Teacher", Options: []string{"Мұғалім", "Оқушы", "Дос"}, CorrectIndex: 0, Points: 1, Type: "mcq"},
				{Question: "Choose the correct translation: Classmate", Options: []string{"Сыныптасы", "Мұғалім", "Директор"}, CorrectIndex: 0, Points: 1, Type: "mcq"},
				{Question: "Fill in the blank: Hello (to a teacher) =  _______ бе", Options: []string{"Сәлеметсіз", "Сәлем", "Рақмет"}, CorrectIndex: 0, Points: 1, Type: "mcq"},
				{Question: "Fill in the blank: Hi (to a classmate) = _______", Options: []string{"Сәлем", "Сәлеметсіз бе", "Көріскенше"}, CorrectIndex: 0, Points: 1, Type: "mcq"},
				{Question: "Listening: Select the correct word.", Options: []string{"Мұғалім", "Сыныптасы"}, CorrectIndex: 0, Points: 1, Type: models.QuizItemTypeListening, AudioText: "Мұғалім"},
			},
		}
	case 7:
		return models.GeneratedLessonContent{
			Title: "Unit 2 Test",
			ExplanationSlides: []string{
				"This is a test to check your understanding of Units 1 and 2. It covers greetings, farewells, and basic vocabulary like **мұғалім** (teacher) and **сыныптасы** (classmate).\n\nRemember the difference between formal and informal greetings. Good luck!",
				"**Сәлем** is an informal greeting, used with friends and family. It's like saying 'Hi' or 'Hello' in English.\n\n**Сәлеметсіз бе** is a formal greeting, used with elders, teachers, or people you don't know well. It's like saying 'Good morning/afternoon/evening'.\n\nPay attention to context when choosing the right greeting!",
			},
			Examples: []string{"Сәлем, достар! — Hi, friends!", "Сәлеметсіз бе, апай? — Good morning/afternoon/evening, teacher?", "Сау бол! — Goodbye!", "Көріскенше! — See you later!"},
			Quiz: []models.QuizItem{
				{Question: "How would you greet your teacher in the morning?", Options: []string{"Сәлем!", "Сау бол!", "Көріскенше!", "Сәлеметсіз бе!"}, CorrectIndex: 3, Points: 1, Type: models.QuizItemTypeMultipleChoice},
				{Question: "Which greeting is informal?", Options: []string{"Сәлеметсіз бе?", "Сәлем!", "Рақмет!", "Көріскенше!"}, CorrectIndex: 1, Points: 1, Type: models.QuizItemTypeMultipleChoice},
				{Question: "Complete the sentence: _____, достар! (Hi, friends!)", Options: []string{"Сәлем", "Сәлем!", "Сау бол!", "Көріскенше!"}, CorrectIndex: 0, Points: 1, Type: "fill_in_the_blank"},
				{Question: "Match the Kazakh word with its English translation.", Options: []string{"Yes", "No"}, CorrectIndex: 0, Points: 3, Type: "matching"},
				{Question: "What does 'Көріскенше!' mean?", Options: []string{"Hello!", "Goodbye!", "See you later!", "Thank you!"}, CorrectIndex: 2, Points: 1, Type: models.QuizItemTypeMultipleChoice},
				{Question: "Choose the correct greeting you hear.", Options: []string{"Сәлем!", "Сәлеметсіз бе?", "Сау бол!", "Рақмет!"}, CorrectIndex: 1, Points: 1, Type: models.QuizItemTypeListening, AudioText: "Сәлеметсіз бе?"},
				{Question: "'Сәлем' is a formal greeting.", Options: []string{"Yes", "No"}, CorrectIndex: 0, Points: 1, Type: "true_false"},
				{Question: "Complete the sentence: Сәлеметсіз _____, ағай? (Good morning/afternoon/evening, sir?)", Options: []string{"бе", "Сәлем!", "Сау бол!", "Көріскенше!"}, CorrectIndex: 0, Points: 1, Type: "fill_in_the_blank"},
				{Question: "What does Сәлем mean?", Options: []string{"Hi", "Student", "Teacher", "Hello"}, CorrectIndex: 0, Points: 2, Type: models.QuizItemTypeMultipleChoice},
				{Question: "You are leaving school for the day. What do you say to your classmate?", Options: []string{"Сәлеметсіз бе?", "Рақмет!", "Сау бол!", "Көріскенше!"}, CorrectIndex: 2, Points: 1, Type: models.QuizItemTypeMultipleChoice},
				{Question: "Which word means 'teacher'?", Options: []string{"Дос", "Мұғалім", "Сынып", "Оқушы"}, CorrectIndex: 1, Points: 1, Type: models.QuizItemTypeMultipleChoice},
			},
		}
	case 8:
		return models.GeneratedLessonContent{
			Title: "Мен және Сен",
			ExplanationSlides: []string{
				"**Мен** means \"I\" in Kazakh. It's used to refer to yourself. Remember this basic pronoun!\n\nFor example: **Мен оқушымын** (Men oqushymyn) - I am a student.",
				"**Сен** means \"you\" (singular, informal) in Kazakh. Use it when speaking to someone you know well, like a friend or family member.\n\nFor example: **Сен кімсің?** (Sen kimsing?) - Who are you?",
				"**Оқушы** means \"student\" in Kazakh. This is a useful noun to know. It applies to students of all ages.\n\nFor example: **Ол оқушы** (Ol oqushy) - He/She is a student.\n\nRemember that Kazakh does not have grammatical gender, so **ол** can mean he or she.",
			},
			Examples: []string{"Мен — I", "Сен — You (informal, singular)", "Оқушы — Student", "Мен оқушымын — I am a student", "Сен оқушысың — You are a student (informal)", "Ол оқушы — He/She is a student", "Мен мұғаліммін — I am a teacher (from Unit 2)", "Сен мұғалімсің — You are a teacher (informal)"},
			Quiz: []models.QuizItem{
				{Question: "Translate to Kazakh: I", Options: []string{"Мен", "Оқушы", "Сен оқушысың", "Мұғалім"}, CorrectIndex: 0, Points: 1, Type: "translate_to_kazakh"},
				{Question: "What does Сен mean?", Options: []string{"You (informal)", "I am a student", "He/She is a student", "I"}, CorrectIndex: 0, Points: 1, Type: "translate_to_english"},
				{Question: "Translate to Kazakh: Student", Options: []string{"Оқушы", "Мен", "Сен оқушысың", "Мұғалім"}, CorrectIndex: 0, Points: 1, Type: "translate_to_kazakh"},
				{Question: "What does Мен оқушымын mean?", Options: []string{"I am a student", "You (informal)", "He/She is a student", "I"}, CorrectIndex: 0, Points: 2, Type: "translate_to_english"},
				{Question: "Translate to Kazakh: You are a student (informal)", Options: []string{"Сен оқушысың", "Мен", "Оқушы", "Мұғалім"}, CorrectIndex: 0, Points: 2, Type: "translate_to_kazakh"},
				{Question: "What does Ол оқушы mean?", Options: []string{"He/She is a student", "You (informal)", "I am a student", "I"}, CorrectIndex: 0, Points: 2, Type: "translate_to_english"},
				{Question: "Listen and choose the correct word.", Options: []string{"Мұғалім", "Оқушы", "Дәрігер"}, CorrectIndex: 1, Points: 2, Type: models.QuizItemTypeListening, AudioText: "Оқушы"},
				{Question: "What does Мен mean?", Options: []string{"I", "You (informal)", "Student", "Teacher"}, CorrectIndex: 0, Points: 2, Type: models.QuizItemTypeMultipleChoice},
				{Question: "Fill in the blank: ____ оқушымын (I am a student)", Options: []string{"Мен", "Оқушы", "Сен оқушысың", "Мұғалім"}, CorrectIndex: 0, Points: 1, Type: "fill_in_the_blank"},
			},
		}
	case 9:
		return models.GeneratedLessonContent{
			Title: "Personal Endings: Мен and Сен",
			ExplanationSlides: []string{
				"This lesson introduces **personal endings** for **\"мен\" (I)** and **\"сен\" (you)**. These endings attach to nouns and adjectives to show who or what something *is*.\n\nThink of them as the Kazakh way of saying \"I am...\" or \"You are...\"",
				"When the word ends in a **hard consonant** or **vowel**, use the endings **-мын** (for \"мен\") and **-сың** (for \"сен\").**\n\nFor example: Мен студентпін (I am a student). Сен дәрігерсің (You are a doctor).",
				"When the word ends in a **soft consonant** or **vowel**, use the endings **-мін** (for \"мен\") and **-сің** (for \"сен\").**\n\nFor example: Мен мұғаліммін (I am a teacher). Сен әдемісің (You are beautiful).",
				"Remember: **-мын/-мін** are for **\"мен\"**, and **-сың/-сің** are for **\"сен\"**. Pay attention to whether the word ends in a hard or soft sound to choose the correct ending!",
			},
			Examples: []string{"Мен студентпін — I am a student.", "Сен дәрігерсің — You are a doctor.", "Мен мұғаліммін — I am a teacher.", "Сен әдемісің — You are beautiful.", "Мен қазақпын — I am Kazakh.", "Сен ақылдысың — You are smart."},
			Quiz: []models.QuizItem{
				{Question: "Мен ... (мұғалім)", Options: []string{"мұғаліммін", "мұғаліммін", "мұғалімсың", "мұғалімсің"}, CorrectIndex: 0, Type: models.QuizItemTypeMultipleChoice},
				{Question: "Сен ... (дәрігер)", Options: []string{"дәрігермін", "дәрігерсың", "дәрігермін", "дәрігерсің"}, CorrectIndex: 3, Type: models.QuizItemTypeMultipleChoice},
				{Question: "Мен ... (студент)", Options: []string{"студентпін", "студентмін", "студентсың", "студентсің"}, CorrectIndex: 0, Type: models.QuizItemTypeMultipleChoice},
				{Question: "Сен ... (ақылды)", Options: []string{"ақылдымын", "ақылдысың", "ақылдымін", "ақылдысің"}, CorrectIndex: 1, Type: models.QuizItemTypeMultipleChoice},
				{Question: "Мен ... (қазақ)", Options: []string{"қазақпын", "қазақмін", "қазақсың", "қазақсің"}, CorrectIndex: 0, Type: models.QuizItemTypeMultipleChoice},
				{Question: "Сен ... (әдемі)", Options: []string{"әдемімін", "әдеміпін", "әдемісың", "әдемісің"}, CorrectIndex: 3, Type: models.QuizItemTypeMultipleChoice},
				{Question: "Мен мұғаліммін", Options: []string{"I am a student.", "You are a teacher.", "I am a teacher.", "You are a student."}, CorrectIndex: 2, Type: models.QuizItemTypeListening, AudioText: "Мен мұғаліммін"},
				{Question: "What does Мен дәрігермін mean?", Options: []string{"I am a doctor.", "You are a student.", "Student", "Teacher"}, CorrectIndex: 0, Points: 2, Type: models.QuizItemTypeMultipleChoice},
			},
		}
	case 10:
		return models.GeneratedLessonContent{
			Title: "Мен және Сен",
			ExplanationSlides: []string{
				"This lesson focuses on using **personal pronouns** with **descriptive words**. We'll learn how to say \"I am a teacher\" and \"You are a student\" in Kazakh. \n\nRemember **Мен** (I) and **Сен** (You). These are fundamental to forming sentences about yourself and others.",
				"When describing yourself, use the suffix **-мін** after the descriptive word. For example, to say \"I am a teacher,\" you would say **Мен мұғаліммін**. \n\n**Мұғалім** means teacher. Adding **-мін** connects it to **Мен** (I).",
				"When describing someone else (using **Сен** - You), use the suffix **-сың** after the descriptive word. To say \"You are a student,\" you would say **Сен оқушысың**. \n\n**Оқушы** means student. The suffix **-сың** links the description to **Сен** (You).",
				"Let's recap! **Мен + descriptive word + -мін** (I am...). **Сен + descriptive word + -сың** (You are...). \n\nPractice these patterns to describe yourself and others using different words.",
			},
			Examples: []string{"Мен дәрігермін — I am a doctor", "Сен студентсің — You are a student", "Мен жүргізушімін — I am a driver", "Сен әншісің — You are a singer"},
			Quiz: []models.QuizItem{
				{Question: "Listen and choose the correct sentence.", Options: []string{"Мен оқушымын", "Сен оқушысың", "Ол оқушы"}, CorrectIndex: 1, Points: 1, Type: models.QuizItemTypeListening, AudioText: "Сен оқушысың"},
				{Question: "Мен дәрігер…", Options: []string{"мін", "сің", "міз"}, CorrectIndex: 0, Points: 1},
				{Question: "Сен мұғалім…", Options: []string{"мін", "сің", "міз"}, CorrectIndex: 1, Points: 1},
				{Question: "I am a driver", Options: []string{"Мен жүргізушімін", "Сен жүргізушісің", "Ол жүргізуші"}, CorrectIndex: 0, Points: 1},
				{Question: "You are a doctor", Options: []string{"Мен дәрігермін", "Сен дәрігерсің", "Ол дәрігер"}, CorrectIndex: 1, Points: 1},
				{Question: "Мен студент…", Options: []string{"мін", "сің", "міз"}, CorrectIndex: 0, Points: 1},
				{Question: "Сен әнші…", Options: []string{"мін", "сің", "міз"}, CorrectIndex: 1, Points: 1},
				{Question: "I am a singer", Options: []string{"Мен әншімін", "Сен әншісің", "Ол әнші"}, CorrectIndex: 0, Points: 1},
				{Question: "You are a teacher", Options: []string{"Мен мұғаліммін", "Сен мұғалімсің", "Ол мұғалім"}, CorrectIndex: 1, Points: 1},
			},
		}
	case 11:
		return models.GeneratedLessonContent{
			Title: "Unit 3 Test: Мен/Сен",
			ExplanationSlides: []string{
				"This test covers **personal pronouns** and **personal endings** you learned in Unit 3. Remember how to use **Мен** and **Сен** correctly.\n\nPay close attention to the sentence structure and the appropriate endings for each pronoun.",
				"**Мен** means \"I\" and takes specific endings depending on the word. **Сен** means \"You\" (singular, informal) and has its own set of endings.\n\nReview the examples and practice questions to refresh your understanding of these concepts.",
				"Remember the words **оқушы** (student) and **мұғалім** (teacher). These are common words used with Мен and Сен.\n\nThink about how these words change when you add personal endings.",
			},
			Examples: []string{"Мен мұғаліммін. — I am a teacher.", "Сен оқушысың. — You are a student.", "Мен дәрігермін. — I am a doctor.", "Сен доспын. — You are a friend."},
			Quiz: []models.QuizItem{
				{Question: "Мен ...", Options: []string{"оқушымын", "оқушысың", "оқушы", "оқушымыз"}, CorrectIndex: 0, Points: 1, Type: "mcq"},
				{Question: "Сен ...", Options: []string{"мұғаліммін", "мұғалімсің", "мұғалім", "мұғалімбіз"}, CorrectIndex: 1, Points: 1, Type: "mcq"},
				{Question: "Translate: I am a student.", Options: []string{"Сен оқушысың.", "Мен мұғаліммін.", "Мен оқушымын.", "Сен мұғалімсің."}, CorrectIndex: 2, Points: 1, Type: "mcq"},
				{Question: "Translate: You are a teacher.", Options: []string{"Мен оқушымын.", "Сен мұғалімсің.", "Мен мұғаліммін.", "Сен оқушысың."}, CorrectIndex: 1, Points: 1, Type: "mcq"},
				{Question: "Fill in the blank: Мен дәрігер____.", Options: []string{"мын", "сің", "мін", "біз"}, CorrectIndex: 2, Points: 1, Type: "mcq"},
				{Question: "Fill in the blank: Сен дос____.", Options: []string{"мін", "сің", "мын", "біз"}, CorrectIndex: 1, Points: 1, Type: "mcq"},
				{Question: "Listening: Choose the correct sentence.", Options: []string{"Сен мұғалімсің.", "Мен оқушымын.", "Сен оқушысың.", "Мен мұғаліммін."}, CorrectIndex: 1, Points: 2, Type: models.QuizItemTypeListening, AudioText: "Мен оқушымын."},
				{Question: "Listening: Choose the correct sentence.", Options: []string{"Мен оқушымын.", "Сен мұғалімсің.", "Сен оқушысың.", "Мен мұғаліммін."}, CorrectIndex: 1, Points: 2, Type: models.QuizItemTypeListening, AudioText: "Сен мұғалімсің."},
				{Question: "Which pronoun means 'I'?", Options: []string{"Сен", "Ол", "Мен", "Біз"}, CorrectIndex: 2, Points: 1, Type: "mcq"},
				{Question: "Which pronoun means 'You' (informal, singular)?", Options: []string{"Мен", "Ол", "Сен", "Біз"}, CorrectIndex: 2, Points: 1, Type: "mcq"},
				{Question: "Complete the sentence: Мен студент____.", Options: []string{"сің", "мін", "пын", "біз"}, CorrectIndex: 1, Points: 1, Type: "mcq"},
			},
		}
	default:
		return models.GeneratedLessonContent{
			Title:             "Lesson",
			ExplanationSlides: []string{"Content for this lesson."},
			Examples:          []string{},
			Quiz: []models.QuizItem{
				{Question: "What did you learn?", Options: []string{"Key concept", "Nothing yet", "Review again"}, CorrectIndex: 0},
			},
		}
	}
}
