// Package demo provides a built-in question pool spanning several
// subjects and the full difficulty range. It lets users try a quiz
// without configuring an LLM provider.
package demo

import "github.com/ascendquiz/ascendquiz/internal/pool"

// DocumentName labels demo sessions in history.
const DocumentName = "Demo Mix"

// Questions returns the built-in demo questions. Tiers are derived
// from each question's predicted-correct percentage, same as generated
// pools.
func Questions() []pool.Question {
	qs := make([]pool.Question, len(demoQuestions))
	copy(qs, demoQuestions)
	for i := range qs {
		qs[i].Tier = pool.TierFromPredicted(qs[i].PredictedCorrect)
	}
	return qs
}

// NewPool builds a validated pool from the demo questions.
func NewPool() (*pool.Pool, error) {
	return pool.New(Questions())
}

var demoQuestions = []pool.Question{
	{
		ID:               "demo-01",
		Text:             "What is the primary function of mitochondria in a cell?",
		Topic:            "Cell Biology",
		PredictedCorrect: 85,
		Options:          []string{"Protein synthesis", "ATP production through cellular respiration", "DNA replication", "Cell membrane formation"},
		CorrectIndex:     1,
		Explanation:      "Mitochondria are the 'powerhouses' of the cell, responsible for producing ATP through cellular respiration. Protein synthesis occurs in ribosomes, DNA replication in the nucleus, and cell membrane formation involves the endoplasmic reticulum and Golgi apparatus.",
	},
	{
		ID:               "demo-02",
		Text:             "In the equation y = mx + b, what does 'm' represent?",
		Topic:            "Linear Equations",
		PredictedCorrect: 90,
		Options:          []string{"Y-intercept", "X-intercept", "Slope of the line", "Origin point"},
		CorrectIndex:     2,
		Explanation:      "In slope-intercept form (y = mx + b), 'm' represents the slope (rate of change) and 'b' represents the y-intercept. The slope tells you how much y changes for each unit increase in x.",
	},
	{
		ID:               "demo-03",
		Text:             "Which data structure uses LIFO (Last In, First Out) ordering?",
		Topic:            "Data Structures",
		PredictedCorrect: 75,
		Options:          []string{"Queue", "Stack", "Linked List", "Binary Tree"},
		CorrectIndex:     1,
		Explanation:      "A stack follows LIFO ordering - the last element added is the first one removed (like a stack of plates). Queues use FIFO (First In, First Out). Linked lists and binary trees don't have inherent LIFO/FIFO ordering.",
	},
	{
		ID:               "demo-04",
		Text:             "What is the derivative of f(x) = x³?",
		Topic:            "Calculus",
		PredictedCorrect: 70,
		Options:          []string{"3x", "x²", "3x²", "x⁴/4"},
		CorrectIndex:     2,
		Explanation:      "Using the power rule: d/dx[xⁿ] = nxⁿ⁻¹. So d/dx[x³] = 3x³⁻¹ = 3x². Option A forgets to reduce the exponent, B forgets the coefficient, and D is the integral, not derivative.",
	},
	{
		ID:               "demo-05",
		Text:             "Which sorting algorithm has the best average-case time complexity?",
		Topic:            "Algorithms",
		PredictedCorrect: 55,
		Options:          []string{"Bubble Sort - O(n²)", "Quick Sort - O(n log n)", "Selection Sort - O(n²)", "Insertion Sort - O(n²)"},
		CorrectIndex:     1,
		Explanation:      "Quick Sort has an average time complexity of O(n log n), which is significantly better than the O(n²) algorithms. Bubble, Selection, and Insertion sort all have quadratic time complexity on average.",
	},
	{
		ID:               "demo-06",
		Text:             "In photosynthesis, where does the light-dependent reaction occur?",
		Topic:            "Cell Biology",
		PredictedCorrect: 60,
		Options:          []string{"Stroma", "Thylakoid membrane", "Mitochondria", "Cell wall"},
		CorrectIndex:     1,
		Explanation:      "Light-dependent reactions occur in the thylakoid membrane where chlorophyll absorbs light energy. The stroma is where the Calvin cycle (light-independent reactions) occurs. Mitochondria handle cellular respiration, not photosynthesis.",
	},
	{
		ID:               "demo-07",
		Text:             "What is the time complexity of binary search?",
		Topic:            "Algorithms",
		PredictedCorrect: 65,
		Options:          []string{"O(n)", "O(n²)", "O(log n)", "O(1)"},
		CorrectIndex:     2,
		Explanation:      "Binary search divides the search space in half each iteration, resulting in O(log n) complexity. Linear search is O(n), and O(1) would mean constant time regardless of input size, which isn't possible for searching.",
	},
	{
		ID:               "demo-08",
		Text:             "Which HTTP method is idempotent and used for completely replacing a resource?",
		Topic:            "Web Development",
		PredictedCorrect: 45,
		Options:          []string{"POST", "PUT", "PATCH", "GET"},
		CorrectIndex:     1,
		Explanation:      "PUT is idempotent (multiple identical requests have the same effect as one) and replaces the entire resource. POST creates new resources and isn't idempotent. PATCH partially updates. GET only retrieves data.",
	},
	{
		ID:               "demo-09",
		Text:             "What is the value of log₂(8)?",
		Topic:            "Logarithms",
		PredictedCorrect: 80,
		Options:          []string{"2", "3", "4", "8"},
		CorrectIndex:     1,
		Explanation:      "log₂(8) asks '2 raised to what power equals 8?' Since 2³ = 8, the answer is 3. This is fundamental to understanding logarithms as the inverse of exponentiation.",
	},
	{
		ID:               "demo-10",
		Text:             "In object-oriented programming, what is encapsulation?",
		Topic:            "OOP Concepts",
		PredictedCorrect: 70,
		Options:          []string{"Creating multiple instances of a class", "Hiding internal state and requiring interaction through methods", "Inheriting properties from a parent class", "Defining multiple methods with the same name"},
		CorrectIndex:     1,
		Explanation:      "Encapsulation bundles data and methods together while hiding internal state, only allowing access through defined interfaces. Option A describes instantiation, C describes inheritance, and D describes method overloading.",
	},
	{
		ID:               "demo-11",
		Text:             "What is the integral of 2x?",
		Topic:            "Calculus",
		PredictedCorrect: 65,
		Options:          []string{"x²", "x² + C", "2", "2x²"},
		CorrectIndex:     1,
		Explanation:      "The integral of 2x is x² + C, where C is the constant of integration. When integrating, we add 1 to the exponent and divide by the new exponent: 2x¹ → 2x²/2 = x². The +C is essential for indefinite integrals.",
	},
	{
		ID:               "demo-12",
		Text:             "Which of the following is NOT a valid Python data type?",
		Topic:            "Python Basics",
		PredictedCorrect: 55,
		Options:          []string{"list", "tuple", "array", "dictionary"},
		CorrectIndex:     2,
		Explanation:      "Python has built-in types: list, tuple, dict (dictionary), set, etc. 'array' is not a built-in type - you need to import it from the array module or use NumPy. Lists are typically used instead.",
	},
	{
		ID:               "demo-13",
		Text:             "What is the pH of a neutral solution at 25°C?",
		Topic:            "Chemistry",
		PredictedCorrect: 85,
		Options:          []string{"0", "7", "14", "1"},
		CorrectIndex:     1,
		Explanation:      "A neutral solution has equal concentrations of H⁺ and OH⁻ ions, which at 25°C corresponds to pH 7. pH below 7 is acidic, above 7 is basic. pH 0 and 1 are very acidic, pH 14 is very basic.",
	},
	{
		ID:               "demo-14",
		Text:             "In a relational database, what does SQL stand for?",
		Topic:            "Databases",
		PredictedCorrect: 80,
		Options:          []string{"Simple Query Language", "Structured Query Language", "Standard Question Language", "System Query Logic"},
		CorrectIndex:     1,
		Explanation:      "SQL stands for Structured Query Language. It's the standard language for managing and manipulating relational databases, used for queries, updates, insertions, and deletions.",
	},
	{
		ID:               "demo-15",
		Text:             "What is the Big O complexity of accessing an element by index in an array?",
		Topic:            "Data Structures",
		PredictedCorrect: 60,
		Options:          []string{"O(n)", "O(log n)", "O(1)", "O(n²)"},
		CorrectIndex:     2,
		Explanation:      "Array access by index is O(1) - constant time - because arrays store elements in contiguous memory. The memory address can be calculated directly: base_address + (index × element_size), regardless of array size.",
	},
}
